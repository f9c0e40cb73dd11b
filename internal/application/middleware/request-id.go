package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"forecast-api/pkg/requestid"
)

// SetupRequestID assigns every request an id, echoes it in X-Request-Id and
// stores it in the request context for outbound calls and logs.
func SetupRequestID(e *echo.Echo) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: requestid.New,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(requestid.WithRequestID(req.Context(), id)))
		},
	}))
}
