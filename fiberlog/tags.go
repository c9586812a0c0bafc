package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid               = "pid"
	TagLatency           = "latency"
	TagStatus            = "status"
	TagMethod            = "method"
	TagPath              = "path"
	TagRoute             = "route"
	TagURL               = "url"
	TagIP                = "ip"
	TagUA                = "ua"
	TagBody              = "body"
	TagResBody           = "resBody"
	TagQueryStringParams = "queryParams"
	RequestID            = "requestId"
)

// FuncTag вычисляет значение поля журнала для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

// data per-request состояние
type data struct {
	pid   int
	start time.Time
	end   time.Time
}

var funcTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagRoute: func(c *fiber.Ctx, d *data) interface{} {
		return c.Route().Path
	},
	TagURL: func(c *fiber.Ctx, d *data) interface{} {
		return c.OriginalURL()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	TagQueryStringParams: func(c *fiber.Ctx, d *data) interface{} {
		return c.Request().URI().QueryArgs().String()
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		requestID, _ := c.Locals("requestid").(string)
		return requestID
	},
}

// getFuncTagMap оставляет только известные теги из конфигурации
func getFuncTagMap(cfg Config) map[string]FuncTag {
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
