package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

type LiveResponse struct {
	Success bool `json:"success"`
}

// InitLiveApiRouters проба живости, хранилище не опрашивается
func InitLiveApiRouters(app *fiber.App) {
	app.Get("/live", live)
}

// @Summary Проверка живости
// @Tags Служебные
// @Success 200 {object} apiv1.LiveResponse
// @router /live [get]
func live(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(LiveResponse{Success: true})
}
