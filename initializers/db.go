package initializers

import (
	"github.com/pkg/errors"
	"zip-codes-backend/config"
	"zip-codes-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.Options{
		Driver:    config.Conf.Database.Driver,
		Host:      config.Conf.Database.Host,
		Port:      config.Conf.Database.Port,
		Name:      config.Conf.Database.Name,
		User:      config.Conf.Database.User,
		Password:  config.Conf.Database.Password,
		Path:      config.Conf.Database.Path,
		DebugMode: *config.Conf.Database.DebugMode,
		Migrate:   *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		panic(errors.Wrap(err, "БД недоступна").Error())
	}

	db.InitPreload(config.Conf.Preload.File, config.Conf.Preload.BatchSize)
}
