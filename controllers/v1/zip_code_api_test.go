package apiv1

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"zip-codes-backend/db"
	zipcodeprovider "zip-codes-backend/lib/zip-code"
	zipcodeapimodels "zip-codes-backend/models/api/zip-code"
	dbmodels "zip-codes-backend/models/db"
)

type zipCodeResponse struct {
	Data struct {
		ID            uint   `json:"id"`
		ZipCode       string `json:"zip_code"`
		FederalEntity struct {
			ID uint `json:"id"`
		} `json:"federal_entity"`
		Municipality struct {
			ID uint `json:"id"`
		} `json:"municipality"`
		Settlements []struct {
			ID             uint   `json:"id"`
			Name           string `json:"name"`
			SettlementType struct {
				ID uint `json:"id"`
			} `json:"settlement_type"`
		} `json:"settlements"`
	} `json:"data"`
}

type listResponse struct {
	Data  []map[string]interface{} `json:"data"`
	Links struct {
		First string  `json:"first"`
		Last  string  `json:"last"`
		Prev  *string `json:"prev"`
		Next  *string `json:"next"`
	} `json:"links"`
	Meta struct {
		CurrentPage int   `json:"current_page"`
		LastPage    int   `json:"last_page"`
		PerPage     int   `json:"per_page"`
		Total       int64 `json:"total"`
	} `json:"meta"`
}

type errResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.SetupJoinTables(testDB))
	require.Nil(t, db.Migrate(testDB))
	return testDB
}

func seedScenario(t *testing.T, tx *gorm.DB, extra int) {
	require.Nil(t, tx.Create(&dbmodels.FederalEntity{BaseModel: dbmodels.BaseModel{ID: 2}, Key: 9, Name: "Ciudad de México"}).Error)
	require.Nil(t, tx.Create(&dbmodels.Municipality{BaseModel: dbmodels.BaseModel{ID: 5}, Key: 15, Name: "Cuauhtémoc", FederalEntityID: 2}).Error)
	require.Nil(t, tx.Create(&dbmodels.SettlementType{BaseModel: dbmodels.BaseModel{ID: 3}, Key: 9, Name: "Colonia"}).Error)
	require.Nil(t, tx.Create(&dbmodels.Settlement{BaseModel: dbmodels.BaseModel{ID: 10}, Key: 1, Name: "Centro", SettlementTypeID: 3}).Error)
	require.Nil(t, tx.Create(&dbmodels.Settlement{BaseModel: dbmodels.BaseModel{ID: 11}, Key: 2, Name: "Roma Norte", SettlementTypeID: 3}).Error)
	require.Nil(t, tx.Create(&dbmodels.ZipCode{BaseModel: dbmodels.BaseModel{ID: 1}, ZipCode: "06700", FederalEntityID: 2, MunicipalityID: 5}).Error)
	require.Nil(t, tx.Create(&dbmodels.SettlementZipCode{SettlementID: 10, ZipCodeID: 1}).Error)
	require.Nil(t, tx.Create(&dbmodels.SettlementZipCode{SettlementID: 11, ZipCodeID: 1}).Error)
	for n := 0; n < extra; n++ {
		rec := dbmodels.ZipCode{ZipCode: fmt.Sprintf("%05d", 10000+n), FederalEntityID: 2, MunicipalityID: 5}
		require.Nil(t, tx.Create(&rec).Error)
	}
}

func newTestApp() *fiber.App {
	app := fiber.New()
	InitLiveApiRouters(app)
	InitZipCodeApiRouters(app)
	return app
}

func doGet(t *testing.T, app *fiber.App, url string, result interface{}) int {
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, url, nil))
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	if result != nil {
		require.Nil(t, json.Unmarshal(body, result), string(body))
	}
	return resp.StatusCode
}

func TestZipCodeShow(t *testing.T) {
	testDB := setupTestDB(t)
	seedScenario(t, testDB, 0)
	zipcodeprovider.NewHandler(testDB, true)
	app := newTestApp()

	t.Run(`show with relations check`, func(t *testing.T) {
		var result zipCodeResponse
		status := doGet(t, app, "/zip-codes/1", &result)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, uint(1), result.Data.ID)
		require.Equal(t, "06700", result.Data.ZipCode)
		require.Equal(t, uint(2), result.Data.FederalEntity.ID)
		require.Equal(t, uint(5), result.Data.Municipality.ID)
		require.Len(t, result.Data.Settlements, 2)
		require.Equal(t, uint(10), result.Data.Settlements[0].ID)
		require.Equal(t, "Centro", result.Data.Settlements[0].Name)
		require.Equal(t, uint(11), result.Data.Settlements[1].ID)
		require.Equal(t, "Roma Norte", result.Data.Settlements[1].Name)
		require.Equal(t, uint(3), result.Data.Settlements[0].SettlementType.ID)
	})

	t.Run(`not found check`, func(t *testing.T) {
		for _, id := range []string{"9999", "abc", "0", "-1"} {
			var result errResponse
			status := doGet(t, app, "/zip-codes/"+id, &result)
			require.Equal(t, fiber.StatusNotFound, status, id)
			require.NotEmpty(t, result.Message)
		}
	})

	t.Run(`soft deleted check`, func(t *testing.T) {
		require.Nil(t, testDB.Create(&dbmodels.ZipCode{BaseModel: dbmodels.BaseModel{ID: 50}, ZipCode: "06600", FederalEntityID: 2, MunicipalityID: 5}).Error)
		require.Nil(t, testDB.Delete(&dbmodels.ZipCode{}, 50).Error)
		status := doGet(t, app, "/zip-codes/50", nil)
		require.Equal(t, fiber.StatusNotFound, status)

		var count int64
		require.Nil(t, testDB.Unscoped().Model(&dbmodels.ZipCode{}).Where("id = ?", 50).Count(&count).Error)
		require.Equal(t, int64(1), count)
	})
}

func TestZipCodeList(t *testing.T) {
	testDB := setupTestDB(t)
	seedScenario(t, testDB, 59)
	zipcodeprovider.NewHandler(testDB, true)
	app := newTestApp()

	t.Run(`first page check`, func(t *testing.T) {
		var result listResponse
		status := doGet(t, app, "/zip-codes", &result)
		require.Equal(t, fiber.StatusOK, status)
		require.Len(t, result.Data, zipcodeprovider.PageSize)
		require.Equal(t, int64(60), result.Meta.Total)
		require.Equal(t, 1, result.Meta.CurrentPage)
		require.Equal(t, 3, result.Meta.LastPage)
		require.Equal(t, zipcodeprovider.PageSize, result.Meta.PerPage)
		require.Nil(t, result.Links.Prev)
		require.NotNil(t, result.Links.Next)
		require.Contains(t, result.Data[0], "federal_entity")
		require.Contains(t, result.Data[0], "settlements")
	})

	t.Run(`pages disjoint check`, func(t *testing.T) {
		seen := map[float64]bool{}
		for page := 1; page <= 3; page++ {
			var result listResponse
			status := doGet(t, app, fmt.Sprintf("/zip-codes?page=%d", page), &result)
			require.Equal(t, fiber.StatusOK, status)
			for _, item := range result.Data {
				id := item["id"].(float64)
				require.False(t, seen[id])
				seen[id] = true
			}
		}
		require.Len(t, seen, 60)
	})

	t.Run(`out of range page check`, func(t *testing.T) {
		var result listResponse
		status := doGet(t, app, "/zip-codes?page=100", &result)
		require.Equal(t, fiber.StatusOK, status)
		require.NotNil(t, result.Data)
		require.Len(t, result.Data, 0)
		require.Equal(t, int64(60), result.Meta.Total)
	})

	t.Run(`huge page check`, func(t *testing.T) {
		var result listResponse
		status := doGet(t, app, "/zip-codes?page=368934881474191034", &result)
		require.Equal(t, fiber.StatusOK, status)
		require.NotNil(t, result.Data)
		require.Len(t, result.Data, 0)
		require.Equal(t, int64(60), result.Meta.Total)
		require.Equal(t, 3, result.Meta.LastPage)
	})

	t.Run(`invalid page check`, func(t *testing.T) {
		for _, page := range []string{"abc", "0", "-2"} {
			var result errResponse
			status := doGet(t, app, "/zip-codes?page="+page, &result)
			require.Equal(t, fiber.StatusUnprocessableEntity, status, page)
			require.NotEmpty(t, result.Message)
			require.Len(t, result.Errors["page"], 1)
		}
	})
}

type failingProvider struct{}

func (failingProvider) List(page int) ([]zipcodeapimodels.ZipCodeView, int64, error) {
	return nil, 0, errors.New("connection refused")
}

func (failingProvider) Get(id string) (zipcodeapimodels.ZipCodeView, error) {
	return zipcodeapimodels.ZipCodeView{}, errors.New("connection refused")
}

func TestStoreUnavailable(t *testing.T) {
	prev := zipcodeprovider.Instance
	zipcodeprovider.Instance = failingProvider{}
	defer func() { zipcodeprovider.Instance = prev }()
	app := newTestApp()

	t.Run(`show store error check`, func(t *testing.T) {
		var result errResponse
		status := doGet(t, app, "/zip-codes/1", &result)
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.NotEmpty(t, result.Message)
		require.NotContains(t, result.Message, "connection refused")
	})

	t.Run(`list store error check`, func(t *testing.T) {
		var result errResponse
		status := doGet(t, app, "/zip-codes", &result)
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.NotEmpty(t, result.Message)
	})
}

func TestLive(t *testing.T) {
	prev := zipcodeprovider.Instance
	zipcodeprovider.Instance = nil
	defer func() { zipcodeprovider.Instance = prev }()

	t.Run(`live without store check`, func(t *testing.T) {
		var result LiveResponse
		status := doGet(t, newTestApp(), "/live", &result)
		require.Equal(t, fiber.StatusOK, status)
		require.True(t, result.Success)
	})
}
