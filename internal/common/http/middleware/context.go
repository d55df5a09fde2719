package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
)

// Context stamps the request context with the correlation id so every log
// line written while serving the request carries it. The id comes from the
// X-Correlation-ID header when the caller supplies one, otherwise the
// request id assigned by the RequestID middleware is reused.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			correlationID := req.Header.Get("X-Correlation-ID")
			if correlationID == "" {
				correlationID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx := req.Context()
			ctx = log.SetCorrelationID(ctx, correlationID)
			ctx = log.SetHost(ctx, req.Host)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
