package lock

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/willipe53/onebor-position-keeper/internal/common/http"
	"github.com/willipe53/onebor-position-keeper/internal/common/validation"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/services"
)

type lockHandler struct {
	conf    config.Config
	lockSvc services.LockService
}

// New lock handler will initialize the locks/ resources endpoint
func New(app *echo.Group, conf config.Config, lockSvc services.LockService) {
	handler := lockHandler{
		conf:    conf,
		lockSvc: lockSvc,
	}
	api := app.Group("/locks")
	api.POST("", handler.applyLockAction())
}

// applyLockAction serves both sides of the lease contract: action "set"
// attempts an acquire and reports granted or conflict, action "delete"
// releases unconditionally.
func (h *lockHandler) applyLockAction() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.LockRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		ctx := c.Request().Context()

		switch req.Action {
		case models.LockActionSet:
			out, err := h.lockSvc.Acquire(ctx, req.Holder)
			if err != nil {
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
			}

			res := models.LockResponse{
				Status:       string(out.Status),
				LockID:       h.conf.Lease.Resource,
				Holder:       req.Holder,
				StaleDeleted: &out.StaleDeleted,
			}
			if out.Status == models.LockStatusConflict {
				return http.RestSuccessResponse(c, nethttp.StatusConflict, res)
			}
			return http.RestSuccessResponse(c, nethttp.StatusOK, res)

		default: // delete, guaranteed by validation
			out, err := h.lockSvc.Release(ctx, req.Holder)
			if err != nil {
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
			}

			return http.RestSuccessResponse(c, nethttp.StatusOK, models.LockResponse{
				Status:       string(out.Status),
				LockID:       h.conf.Lease.Resource,
				Holder:       req.Holder,
				DeletedCount: &out.DeletedCount,
			})
		}
	}
}
