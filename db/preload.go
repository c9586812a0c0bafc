package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"zip-codes-backend/lib/metrics"
	"zip-codes-backend/lib/sepomex"
	importstore "zip-codes-backend/lib/zip-code/import-store"
)

const defaultBatchSize = 500

// InitPreload предзаполнение каталога почтовых индексов, если таблица индексов пуста
func InitPreload(filePath string, batchSize int) {
	if filePath == "" {
		log.Warn("каталог почтовых индексов не загружен, отсутствует настройка PRELOAD_FILE")
		return
	}
	if err := PreloadZipCodes(DB, filePath, batchSize); err != nil {
		log.WithError(err).WithField("file", filePath).Error("ошибка предзаполнения почтовых индексов")
	}
}

// PreloadZipCodes загружает файл целиком в одной транзакции: при ошибке таблицы остаются пустыми
// и загрузка повторяется при следующем запуске
func PreloadZipCodes(DB *gorm.DB, filePath string, batchSize int) error {
	log.Info("предзаполнение почтовых индексов")
	return DB.Transaction(func(tx *gorm.DB) error {
		return preloadZipCodes(tx, filePath, batchSize)
	})
}

func preloadZipCodes(tx *gorm.DB, filePath string, batchSize int) error {
	store := importstore.NewInstance(tx)
	rowCount, err := store.ZipCodeCount()
	if err != nil {
		return err
	}
	if rowCount > 0 {
		log.WithField("count", rowCount).Info("почтовые индексы заполнены")
		return nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	total := 0
	batch := make([]sepomex.Record, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		added, err := store.Import(batch)
		if err != nil {
			return err
		}
		total += added
		log.WithField("added", total).Debug("загружена пачка почтовых индексов")
		batch = batch[:0]
		return nil
	}
	err = sepomex.ReadFile(filePath, func(rec sepomex.Record) error {
		batch = append(batch, rec)
		if len(batch) < batchSize {
			return nil
		}
		return flush()
	})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла с почтовыми индексами")
	}
	if err = flush(); err != nil {
		return errors.Wrap(err, "ошибка загрузки файла с почтовыми индексами")
	}
	log.WithField("added", total).Info("почтовые индексы добавлены")
	metrics.Instance.RecordsImported(total)
	return nil
}
