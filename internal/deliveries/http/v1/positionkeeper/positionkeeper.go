package positionkeeper

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/willipe53/onebor-position-keeper/internal/common/http"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/services"
)

type keeperHandler struct {
	keeperSvc  services.KeeperService
	refDataSvc services.RefDataService
}

// New keeper handler will initialize the position-keeper/ resources endpoint
func New(app *echo.Group, keeperSvc services.KeeperService, refDataSvc services.RefDataService) {
	handler := keeperHandler{
		keeperSvc:  keeperSvc,
		refDataSvc: refDataSvc,
	}
	api := app.Group("/position-keeper")
	api.POST("/run", handler.runPass())
	api.POST("/refresh", handler.refreshReferenceData())
}

// runPass triggers a single on-demand drain pass and reports its summary.
// A lock conflict is a normal outcome, surfaced as 409 so callers can tell
// "another keeper is running" apart from a failure.
func (h *keeperHandler) runPass() echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := h.keeperSvc.RunPass(c.Request().Context(), models.KeeperTriggerOnDemand)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		if out.Conflict {
			return http.RestSuccessResponse(c, nethttp.StatusConflict, out)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, out)
	}
}

func (h *keeperHandler) refreshReferenceData() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.refDataSvc.Refresh(c.Request().Context()); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, map[string]string{
			"status": "refreshed",
		})
	}
}
