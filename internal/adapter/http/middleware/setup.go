package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// ExposedHeaders are response headers browsers may read cross-origin.
var ExposedHeaders = []string{RequestIDHeader, "X-Booking-View", echo.HeaderLocation, echo.HeaderContentDisposition}

// Setup registers the global middleware on the Echo instance. The order is
// important:
//  1. RequestID - first, so every later log line carries the id
//  2. RequestLogger - logs every request, including recovered panics
//  3. Recover - catches panics in handlers and returns 500
//  4. CORS - lets the browser client call the API
func Setup(e *echo.Echo, log zerolog.Logger) {
	for _, m := range Chain(log) {
		e.Use(m)
	}
}

// Chain returns the global middleware as a slice for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAccept, RequestIDHeader},
			ExposeHeaders: ExposedHeaders,
		}),
	}
}
