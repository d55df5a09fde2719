package refdata

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/willipe53/onebor-position-keeper/internal/common/http"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/services"
)

type refDataHandler struct {
	refDataSvc services.RefDataService
}

// New refdata handler will initialize the reference data read endpoints
func New(app *echo.Group, refDataSvc services.RefDataService) {
	handler := refDataHandler{
		refDataSvc: refDataSvc,
	}
	app.GET("/transaction-types", handler.getAllTransactionTypes())
	app.GET("/entities", handler.getAllEntities())
}

func (h *refDataHandler) getAllTransactionTypes() echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := h.refDataSvc.ListTransactionTypes(c.Request().Context())
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		var data []models.TransactionTypeOut
		for _, v := range res {
			data = append(data, v.ToResponse())
		}

		return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
	}
}

func (h *refDataHandler) getAllEntities() echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := h.refDataSvc.ListEntities(c.Request().Context())
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		var data []models.EntityOut
		for _, v := range res {
			data = append(data, v.ToResponse())
		}

		return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
	}
}
