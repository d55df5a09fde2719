package health

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/willipe53/onebor-position-keeper/internal/common/http"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
)

type healthHandler struct {
	sqlRepo repositories.SQLRepository
}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group, sqlRepo repositories.SQLRepository) {
	hh := healthHandler{sqlRepo: sqlRepo}
	health := app.Group("/health")
	health.GET("", hh.healthCheck())
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}
)

func (th healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := th.sqlRepo.Ping(c.Request().Context()); err != nil {
			return commonhttp.RestErrorResponse(c, nethttp.StatusServiceUnavailable, err)
		}

		return commonhttp.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}
