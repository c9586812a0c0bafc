package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	zipcodeprovider "zip-codes-backend/lib/zip-code"
	apimodels "zip-codes-backend/models/api"
)

const RequestIDKey = "requestid"

var errInvalidPage = errors.New("номер страницы должен быть целым числом не меньше 1")

type BaseAPIController struct{}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	entry := log.WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals(RequestIDKey).(string); ok && requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

// GetPage номер страницы из query, по умолчанию 1
func (c *BaseAPIController) GetPage(ctx *fiber.Ctx) (int, error) {
	value := ctx.Query("page")
	if value == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, errInvalidPage
	}
	return page, nil
}

func (c *BaseAPIController) SendValidationError(ctx *fiber.Ctx, field string, err error) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewValidationError(field, err.Error()))
}

// SendError отсутствующая запись отдается как 404, остальное как 500
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	if errors.Is(err, zipcodeprovider.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
