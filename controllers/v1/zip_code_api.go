package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"zip-codes-backend/controllers"
	zipcodeprovider "zip-codes-backend/lib/zip-code"
	apimodels "zip-codes-backend/models/api"
)

type zipCodeApiController struct {
	controllers.BaseAPIController
}

func InitZipCodeApiRouters(app *fiber.App) {
	controller := zipCodeApiController{}
	app.Route("zip-codes", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":zip_code", controller.show)
	})
}

// @Summary Список почтовых индексов
// @Tags Почтовые индексы
// @Description Постраничный список, 25 записей на странице
// @Param   page          		query    int  				    	false         "Страница (1,2,3..)"
// @Success 200 {object} apimodels.CollectionResponse{data=[]zipcodeapimodels.ZipCodeView}
// @Failure 422 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /zip-codes [get]
func (c *zipCodeApiController) list(ctx *fiber.Ctx) error {
	page, err := c.GetPage(ctx)
	if err != nil {
		return c.SendValidationError(ctx, "page", err)
	}

	list, rowCount, err := zipcodeprovider.Instance.List(page)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка почтовых индексов")
	}
	pagination := apimodels.Pagination{Page: page, Limit: zipcodeprovider.PageSize}
	path := ctx.BaseURL() + ctx.Path()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewCollectionResponse(list, len(list), pagination, rowCount, path))
}

// @Summary Получение по ИД
// @Tags Почтовые индексы
// @Description Почтовый индекс с субъектом федерации, муниципалитетом и населенными пунктами. Поиск по внутреннему ИД записи.
// @Param   zip_code          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=zipcodeapimodels.ZipCodeView}
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /zip-codes/{zip_code} [get]
func (c *zipCodeApiController) show(ctx *fiber.Ctx) error {
	resp, err := zipcodeprovider.Instance.Get(ctx.Params("zip_code"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("zip_code", ctx.Params("zip_code")), err, "Ошибка получения почтового индекса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
