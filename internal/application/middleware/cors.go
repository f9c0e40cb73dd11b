package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupCors lets the listed origins read responses. "*" allows every origin.
func SetupCors(e *echo.Echo, allowedOrigins []string) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
}

// SetupRecover turns handler panics into 500 responses.
func SetupRecover(e *echo.Echo) {
	e.Use(echomw.Recover())
}
