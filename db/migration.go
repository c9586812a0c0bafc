package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "zip-codes-backend/models/db"
)

// SetupJoinTables регистрирует модель связи settlement_zip_code вместо таблицы по умолчанию
// (составной первичный ключ), чтобы миграции и preload работали с суррогатным ИД.
func SetupJoinTables(tx *gorm.DB) error {
	err := tx.SetupJoinTable(&dbmodels.ZipCode{}, "Settlements", &dbmodels.SettlementZipCode{})
	if err != nil {
		return errors.Wrap(err, "ошибка регистрации таблицы связи settlement_zip_code")
	}
	return nil
}

func AutoMigrateDB() error {
	return Migrate(DB)
}

func Migrate(tx *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := tx.AutoMigrate(&dbmodels.FederalEntity{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FederalEntity")
	}
	if err := tx.AutoMigrate(&dbmodels.Municipality{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Municipality")
	}
	if err := tx.AutoMigrate(&dbmodels.SettlementType{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SettlementType")
	}
	if err := tx.AutoMigrate(&dbmodels.Settlement{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Settlement")
	}
	if err := tx.AutoMigrate(&dbmodels.ZipCode{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ZipCode")
	}
	if err := tx.AutoMigrate(&dbmodels.SettlementZipCode{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SettlementZipCode")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
