package zipcodestore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	apimodels "zip-codes-backend/models/api"
	zipcodeapimodels "zip-codes-backend/models/api/zip-code"
	dbmodels "zip-codes-backend/models/db"
)

type Provider interface {
	ListCount() (count int64, err error)
	List(pagination apimodels.Pagination, relations zipcodeapimodels.Relations) (list []dbmodels.ZipCode, err error)
	GetByID(id uint, relations zipcodeapimodels.Relations) (*dbmodels.ZipCode, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListCount() (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.ZipCode{}).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества почтовых индексов")
		return 0, errors.Wrap(err, "ошибка получения общего количества почтовых индексов")
	}
	return rowCount, nil
}

func (i impl) List(pagination apimodels.Pagination, relations zipcodeapimodels.Relations) (list []dbmodels.ZipCode, err error) {
	list = []dbmodels.ZipCode{}
	tx := i.db.Model(dbmodels.ZipCode{})
	tx = i.preload(tx, relations)
	page, limit := pagination.GetPage()
	tx = i.setPage(tx, page, limit)
	err = tx.Order("zip_codes.id").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка почтовых индексов")
	}
	return list, nil
}

func (i impl) GetByID(id uint, relations zipcodeapimodels.Relations) (*dbmodels.ZipCode, error) {
	rec := dbmodels.ZipCode{}
	tx := i.preload(i.db, relations)
	err := tx.Where("zip_codes.id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения почтового индекса")
	}
	return &rec, nil
}

// preload жадная загрузка запрошенных связей, населенные пункты вместе с их типом
func (i impl) preload(tx *gorm.DB, relations zipcodeapimodels.Relations) *gorm.DB {
	if relations.Has(zipcodeapimodels.RelationFederalEntity) {
		tx = tx.Preload("FederalEntity")
	}
	if relations.Has(zipcodeapimodels.RelationMunicipality) {
		tx = tx.Preload("Municipality")
	}
	if relations.Has(zipcodeapimodels.RelationSettlements) {
		tx = tx.
			Preload("Settlements", func(db *gorm.DB) *gorm.DB {
				return db.Order("settlements.id")
			}).
			Preload("Settlements.SettlementType")
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) *gorm.DB {
	offset := (page - 1) * limit
	return tx.Limit(limit).Offset(offset)
}
