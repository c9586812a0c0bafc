package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"zip-codes-backend/config"
	apiv1 "zip-codes-backend/controllers/v1"
	"zip-codes-backend/db"
	_ "zip-codes-backend/docs"
	"zip-codes-backend/fiberlog"
	"zip-codes-backend/initializers"
	"zip-codes-backend/lib/metrics"
	"zip-codes-backend/middleware"
)

// @title Zip codes API
// @version 1.0
// @description Справочник почтовых индексов: муниципалитеты, субъекты и населённые пункты
// @BasePath /
func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(config.Conf.App.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.Conf.App.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(config.Conf.App.IdleTimeout) * time.Second,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Use(middleware.Metrics(metrics.Instance))
	if config.Conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, HEAD, OPTIONS",
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: config.Conf.Api.SwaggerFile,
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Instance.Handler()))
	apiv1.InitLiveApiRouters(app)
	apiv1.InitZipCodeApiRouters(app)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = <-c
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	if err := db.Close(); err != nil {
		log.WithError(err).Error("ошибка закрытия соединения с БД")
	}
	log.Info("HTTP server successfully stopped")
}
