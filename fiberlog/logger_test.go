package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func TestNew(t *testing.T) {
	t.Run(`request fields check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{
			Logger: newTestLogger(buf),
			Tags:   []string{TagMethod, TagPath, TagStatus, TagLatency, "unknown"},
		}))
		app.Get("/zip-codes/:zip_code", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "не найдено"})
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/zip-codes/9999", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var entry map[string]interface{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/zip-codes/9999", entry[TagPath])
		require.Equal(t, float64(fiber.StatusNotFound), entry[TagStatus])
		require.Equal(t, "warning", entry["level"])
		require.Contains(t, entry, TagLatency)
		require.NotContains(t, entry, "unknown")
	})

	t.Run(`skip paths check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{
			Logger:    newTestLogger(buf),
			Tags:      []string{TagPath},
			SkipPaths: []string{"/live"},
		}))
		app.Get("/live", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"success": true})
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/live", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, 0, buf.Len())
	})
}
