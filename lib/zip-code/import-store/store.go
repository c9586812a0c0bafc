package zipcodeimportstore

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zip-codes-backend/lib/sepomex"
	dbmodels "zip-codes-backend/models/db"
)

// Provider загрузка каталога SEPOMEX. Повторная загрузка тех же строк ничего не дублирует.
type Provider interface {
	ZipCodeCount() (int64, error)
	Import(list []sepomex.Record) (added int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db:              DB,
		federalEntities: map[int]uint{},
		municipalities:  map[string]uint{},
		settlementTypes: map[int]uint{},
	}
}

// impl кэширует ИД справочников между пачками, не предназначен для параллельной загрузки
type impl struct {
	db              *gorm.DB
	federalEntities map[int]uint
	municipalities  map[string]uint
	settlementTypes map[int]uint
}

func (i *impl) ZipCodeCount() (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.ZipCode{}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества почтовых индексов")
	}
	return rowCount, nil
}

func (i *impl) Import(list []sepomex.Record) (added int, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range list {
			isNew, err := i.importRecord(tx, rec)
			if err != nil {
				return errors.Wrapf(err, "индекс %s, населенный пункт %s", rec.ZipCode, rec.SettlementName)
			}
			if isNew {
				added++
			}
		}
		return nil
	})
	if err != nil {
		i.resetCache()
		return 0, err
	}
	return added, nil
}

func (i *impl) importRecord(tx *gorm.DB, rec sepomex.Record) (isNew bool, err error) {
	federalEntityID, err := i.federalEntityID(tx, rec)
	if err != nil {
		return false, err
	}
	municipalityID, err := i.municipalityID(tx, federalEntityID, rec)
	if err != nil {
		return false, err
	}
	settlementTypeID, err := i.settlementTypeID(tx, rec)
	if err != nil {
		return false, err
	}

	settlement := dbmodels.Settlement{}
	err = tx.
		Where(dbmodels.Settlement{Key: rec.SettlementKey, Name: rec.SettlementName, SettlementTypeID: settlementTypeID}).
		Attrs(dbmodels.Settlement{ZoneType: nullable(rec.ZoneType)}).
		FirstOrCreate(&settlement).
		Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка добавления населенного пункта")
	}

	zipCode := dbmodels.ZipCode{}
	err = tx.
		Where(dbmodels.ZipCode{ZipCode: rec.ZipCode, MunicipalityID: municipalityID}).
		Attrs(dbmodels.ZipCode{FederalEntityID: federalEntityID, Locality: nullable(rec.City)}).
		FirstOrCreate(&zipCode).
		Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка добавления почтового индекса")
	}

	link := dbmodels.SettlementZipCode{SettlementID: settlement.ID, ZipCodeID: zipCode.ID}
	result := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "ошибка добавления связи населенного пункта и индекса")
	}
	return result.RowsAffected > 0, nil
}

func (i *impl) federalEntityID(tx *gorm.DB, rec sepomex.Record) (uint, error) {
	if id, ok := i.federalEntities[rec.FederalEntityKey]; ok {
		return id, nil
	}
	item := dbmodels.FederalEntity{}
	err := tx.
		Where(dbmodels.FederalEntity{Key: rec.FederalEntityKey}).
		Attrs(dbmodels.FederalEntity{Name: rec.FederalEntityName}).
		FirstOrCreate(&item).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления субъекта федерации")
	}
	i.federalEntities[rec.FederalEntityKey] = item.ID
	return item.ID, nil
}

func (i *impl) municipalityID(tx *gorm.DB, federalEntityID uint, rec sepomex.Record) (uint, error) {
	cacheKey := fmt.Sprintf("%d:%d", federalEntityID, rec.MunicipalityKey)
	if id, ok := i.municipalities[cacheKey]; ok {
		return id, nil
	}
	item := dbmodels.Municipality{}
	err := tx.
		Where(dbmodels.Municipality{Key: rec.MunicipalityKey, FederalEntityID: federalEntityID}).
		Attrs(dbmodels.Municipality{Name: rec.MunicipalityName}).
		FirstOrCreate(&item).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления муниципалитета")
	}
	i.municipalities[cacheKey] = item.ID
	return item.ID, nil
}

func (i *impl) settlementTypeID(tx *gorm.DB, rec sepomex.Record) (uint, error) {
	if id, ok := i.settlementTypes[rec.SettlementTypeKey]; ok {
		return id, nil
	}
	item := dbmodels.SettlementType{}
	err := tx.
		Where(dbmodels.SettlementType{Key: rec.SettlementTypeKey}).
		Attrs(dbmodels.SettlementType{Name: rec.SettlementTypeName}).
		FirstOrCreate(&item).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления типа населенного пункта")
	}
	i.settlementTypes[rec.SettlementTypeKey] = item.ID
	return item.ID, nil
}

// resetCache после отката транзакции ИД из кэша могут указывать на несуществующие записи
func (i *impl) resetCache() {
	i.federalEntities = map[int]uint{}
	i.municipalities = map[string]uint{}
	i.settlementTypes = map[int]uint{}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
