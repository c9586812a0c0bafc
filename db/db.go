package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

var DB *gorm.DB

type Options struct {
	Driver    string
	Host      string
	Port      string
	Name      string
	User      string
	Password  string
	Path      string
	DebugMode bool
	Migrate   bool
}

func Connect(opts Options) (err error) {
	if DB != nil {
		return nil
	}
	dialector, err := openDialector(opts)
	if err != nil {
		return err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	if opts.DebugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if err = SetupJoinTables(db); err != nil {
		return err
	}
	DB = db
	if opts.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.WithField("driver", opts.Driver).Info("Сервис успешно подключен к БД")
	return nil
}

func openDialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverPostgres, "":
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			opts.Host, opts.Port, opts.User, opts.Name, opts.Password)
		return postgres.Open(dbConnString), nil
	case DriverSqlite:
		return sqlite.Open(opts.Path + "?_foreign_keys=on"), nil
	}
	return nil, errors.Errorf("неизвестный драйвер БД: %s", opts.Driver)
}

// PingDB проверка соединения с БД после подключения
func PingDB() error {
	if DB == nil {
		return errors.New("подключение к БД не инициализировано")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return errors.Wrap(err, "ошибка получения соединения с БД")
	}
	if err = sqlDB.Ping(); err != nil {
		return errors.Wrap(err, "ошибка проверки соединения с БД")
	}
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return errors.Wrap(err, "ошибка получения соединения с БД")
	}
	return sqlDB.Close()
}
