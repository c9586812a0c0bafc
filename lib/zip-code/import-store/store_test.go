package zipcodeimportstore_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"zip-codes-backend/db"
	"zip-codes-backend/lib/sepomex"
	importstore "zip-codes-backend/lib/zip-code/import-store"
	dbmodels "zip-codes-backend/models/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.SetupJoinTables(testDB))
	require.Nil(t, db.Migrate(testDB))
	return testDB
}

func catalogRecord(zipCode string, settlementKey int, settlementName string) sepomex.Record {
	return sepomex.Record{
		ZipCode:            zipCode,
		SettlementKey:      settlementKey,
		SettlementName:     settlementName,
		SettlementTypeKey:  9,
		SettlementTypeName: "Colonia",
		ZoneType:           "Urbano",
		MunicipalityKey:    15,
		MunicipalityName:   "Cuauhtémoc",
		FederalEntityKey:   9,
		FederalEntityName:  "Ciudad de México",
		City:               "Ciudad de México",
	}
}

func TestImport(t *testing.T) {
	testDB := setupTestDB(t)
	store := importstore.NewInstance(testDB)

	t.Run(`import check`, func(t *testing.T) {
		added, err := store.Import([]sepomex.Record{
			catalogRecord("06700", 1, "Roma Norte"),
			catalogRecord("06700", 2, "Centro"),
			catalogRecord("06000", 2, "Centro"),
		})
		require.Nil(t, err)
		require.Equal(t, 3, added)

		count, err := store.ZipCodeCount()
		require.Nil(t, err)
		require.Equal(t, int64(2), count)

		var federalEntities, municipalities, settlements, links int64
		require.Nil(t, testDB.Model(dbmodels.FederalEntity{}).Count(&federalEntities).Error)
		require.Nil(t, testDB.Model(dbmodels.Municipality{}).Count(&municipalities).Error)
		require.Nil(t, testDB.Model(dbmodels.Settlement{}).Count(&settlements).Error)
		require.Nil(t, testDB.Model(dbmodels.SettlementZipCode{}).Count(&links).Error)
		require.Equal(t, int64(1), federalEntities)
		require.Equal(t, int64(1), municipalities)
		require.Equal(t, int64(2), settlements)
		require.Equal(t, int64(3), links)

		var zipCode dbmodels.ZipCode
		require.Nil(t, testDB.Where("zip_code = ?", "06700").First(&zipCode).Error)
		require.NotNil(t, zipCode.Locality)
		require.Equal(t, "Ciudad de México", *zipCode.Locality)
	})

	t.Run(`repeated import skips duplicates check`, func(t *testing.T) {
		added, err := importstore.NewInstance(testDB).Import([]sepomex.Record{
			catalogRecord("06700", 1, "Roma Norte"),
		})
		require.Nil(t, err)
		require.Equal(t, 0, added)

		var links int64
		require.Nil(t, testDB.Model(dbmodels.SettlementZipCode{}).Count(&links).Error)
		require.Equal(t, int64(3), links)
	})
}
