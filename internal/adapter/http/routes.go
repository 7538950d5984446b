package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/flight-search/flight-booking-system/internal/adapter/http/middleware"
)

// RegisterRoutes registers all booking API routes. Session scoped routes
// resolve their store through the session binder.
func RegisterRoutes(e *echo.Echo, h *BookingHandler) {
	e.Validator = NewRequestValidator()

	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix)
	api.GET("/airports", h.ListAirports)
	api.POST("/sessions", h.CreateSession)

	session := api.Group("/sessions/:"+middleware.SessionParam, middleware.SessionBinder(h.sessions))
	session.GET("", h.GetSession)
	session.DELETE("", h.ClearSession)
	session.POST("/end", h.EndSession)
	session.POST("/search", h.Search)
	session.GET("/results", h.Results)
	session.POST("/selection", h.SelectFlight)
	session.GET("/passengers", h.Roster)
	session.POST("/passengers/submit", h.SubmitPassengers)
	session.PATCH("/passengers/:passengerId", h.UpdatePassenger)
	session.GET("/summary", h.Summary)
	session.GET("/summary.pdf", h.SummaryPDF)
}
