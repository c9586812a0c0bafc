package initializers

import (
	"zip-codes-backend/config"
	"zip-codes-backend/db"
	"zip-codes-backend/fiberlog"
	zipcodeprovider "zip-codes-backend/lib/zip-code"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	SetLogLevel(config.Conf.App.LogLevel)
	InitDBConnection()
	zipcodeprovider.NewHandler(db.DB, *config.Conf.Api.ListRelations)
}
