package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"zip-codes-backend/lib/metrics"
)

// Metrics учёт запросов по шаблону маршрута, чтобы ИД записи не попадал в метки
func Metrics(manager *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		manager.ObserveRequest(route, c.Method(), status, time.Since(start))
		return err
	}
}
