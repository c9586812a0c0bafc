package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		ReadTimeout  int    `default:"10" env:"APP_READ_TIMEOUT"`  // секунды
		WriteTimeout int    `default:"10" env:"APP_WRITE_TIMEOUT"` // секунды
		IdleTimeout  int    `default:"60" env:"APP_IDLE_TIMEOUT"`  // секунды
		LogLevel     string `default:"info" env:"APP_LOG_LEVEL"`
		// адрес для уведомлений об ответах 5xx, пусто - не отправлять
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Api struct {
		ListRelations *bool  `default:"true" env:"API_LIST_RELATIONS"`
		SwaggerFile   string `default:"./docs/swagger.json" env:"API_SWAGGER_FILE"`
	}
	Database struct {
		Driver         string `default:"postgres" env:"DB_DRIVER"` // postgres | sqlite
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"zip-codes" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		Path           string `default:"zip-codes.db" env:"DB_PATH"` // файл для sqlite
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Preload struct {
		File      string `default:"" env:"PRELOAD_FILE"` // CPdescarga.txt или .xlsx
		BatchSize int    `default:"500" env:"PRELOAD_BATCH_SIZE"`
	}
}

func configFiles() []string {
	files := []string{}
	for _, name := range []string{"config.yml"} {
		if _, err := os.Stat(name); err == nil {
			files = append(files, name)
		}
	}
	return files
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
