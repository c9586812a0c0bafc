package zipcodeprovider

import (
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	store "zip-codes-backend/lib/zip-code/store"
	"zip-codes-backend/lib/metrics"
	initchecker "zip-codes-backend/lib/utils/init-checker"
	apimodels "zip-codes-backend/models/api"
	zipcodeapimodels "zip-codes-backend/models/api/zip-code"
)

// PageSize фиксированный размер страницы списка
const PageSize = 25

var ErrNotFound = errors.New("почтовый индекс не найден")

type Provider interface {
	List(page int) (list []zipcodeapimodels.ZipCodeView, rowCount int64, err error)
	Get(id string) (item zipcodeapimodels.ZipCodeView, err error)
}

var Instance Provider

// NewHandler listRelations: загружать ли связи для списка (для карточки загружаются всегда)
func NewHandler(DB *gorm.DB, listRelations bool) {
	Instance = NewInstance(store.NewInstance(DB), listRelations)
}

func NewInstance(zipCodeStore store.Provider, listRelations bool) Provider {
	instance := impl{
		store:         zipCodeStore,
		listRelations: zipcodeapimodels.NewRelations(),
	}
	if listRelations {
		instance.listRelations = zipcodeapimodels.AllRelations()
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store         store.Provider
	listRelations zipcodeapimodels.Relations
}

func (i impl) List(page int) (list []zipcodeapimodels.ZipCodeView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount()
	if err != nil {
		metrics.Instance.StoreError("count")
		log.WithError(err).Error("ошибка подсчёта почтовых индексов")
		return nil, 0, err
	}

	// граница проверяется по номеру страницы до вычисления смещения
	lastPage := (rowCount + PageSize - 1) / PageSize
	if page < 1 || int64(page) > lastPage {
		return []zipcodeapimodels.ZipCodeView{}, rowCount, nil
	}
	pagination := apimodels.Pagination{Page: page, Limit: PageSize}

	recList, err := i.store.List(pagination, i.listRelations)
	if err != nil {
		metrics.Instance.StoreError("list")
		log.WithError(err).Error("ошибка получения списка почтовых индексов")
		return nil, 0, err
	}
	result := make([]zipcodeapimodels.ZipCodeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, zipcodeapimodels.Convert(rec, i.listRelations))
	}
	return result, rowCount, nil
}

// Get поиск по внутреннему ИД записи, а не по значению индекса
func (i impl) Get(id string) (item zipcodeapimodels.ZipCodeView, err error) {
	recID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || recID == 0 {
		return zipcodeapimodels.ZipCodeView{}, ErrNotFound
	}
	relations := zipcodeapimodels.AllRelations()
	rec, err := i.store.GetByID(uint(recID), relations)
	if err != nil {
		metrics.Instance.StoreError("get")
		log.WithError(err).WithField("zip_code_id", id).Error("ошибка получения почтового индекса")
		return zipcodeapimodels.ZipCodeView{}, err
	}
	if rec == nil {
		return zipcodeapimodels.ZipCodeView{}, ErrNotFound
	}
	return zipcodeapimodels.Convert(*rec, relations), nil
}
