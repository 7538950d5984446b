package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-system/internal/adapter/document"
	"github.com/flight-search/flight-booking-system/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-system/internal/adapter/http/response"
	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/logger"
	"github.com/flight-search/flight-booking-system/internal/store"
	"github.com/flight-search/flight-booking-system/internal/usecase"
)

// BookingViewHeader tells a redirected client which screen to show.
const BookingViewHeader = "X-Booking-View"

// BookingHandler handles the booking session endpoints.
type BookingHandler struct {
	useCase  usecase.BookingUseCase
	sessions *store.Registry
	renderer *document.SummaryRenderer
	log      *logger.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(uc usecase.BookingUseCase, sessions *store.Registry, renderer *document.SummaryRenderer, log *logger.Logger) *BookingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &BookingHandler{
		useCase:  uc,
		sessions: sessions,
		renderer: renderer,
		log:      log,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airports
// @Description Airports offered by the search form. Search input is not restricted to them.
// @Tags search
// @Produce json
// @Success 200 {object} AirportsResponse
// @Router /airports [get]
func (h *BookingHandler) ListAirports(c echo.Context) error {
	return response.OK(c, &AirportsResponse{Airports: domain.Airports})
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Start a booking session
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *BookingHandler) CreateSession(c echo.Context) error {
	id, s := h.sessions.Create()
	state, err := s.State()
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, toSessionResponse(id, state))
}

// GetSession handles GET /api/v1/sessions/:sessionId
//
// @Summary Get booking state
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{sessionId} [get]
func (h *BookingHandler) GetSession(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	state, err := s.State()
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(middleware.GetSessionID(c), state))
}

// ClearSession handles DELETE /api/v1/sessions/:sessionId
//
// @Summary Reset the booking
// @Description Clears search, results, selection and passengers. The session itself stays alive.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{sessionId} [delete]
func (h *BookingHandler) ClearSession(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	state, err := h.useCase.Clear(s)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(middleware.GetSessionID(c), state))
}

// EndSession handles POST /api/v1/sessions/:sessionId/end
//
// @Summary End the session
// @Description Drops the session and its booking. Later requests with the id answer 404.
// @Tags sessions
// @Param sessionId path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{sessionId}/end [post]
func (h *BookingHandler) EndSession(c echo.Context) error {
	id := middleware.GetSessionID(c)
	if err := h.sessions.Delete(id); err != nil {
		return h.handleError(c, err)
	}
	h.requestLog(c).Debug().Msg("session ended")
	return response.NoContent(c)
}

// Search handles POST /api/v1/sessions/:sessionId/search
//
// @Summary Search for flights
// @Description Validates the search form, stores it in the session and fetches offers.
// @Tags search
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body SearchRequest true "Search form"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 502 {object} response.ErrorDetail "Search failed"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /sessions/{sessionId}/search [post]
func (h *BookingHandler) Search(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return h.handleError(c, err)
	}

	form, err := toSearchForm(&req)
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	params, err := h.useCase.SubmitSearch(s, form)
	if err != nil {
		return h.handleError(c, err)
	}

	state, err := h.useCase.RunSearch(c.Request().Context(), s)
	if err != nil {
		h.requestLog(c).Warn().
			Err(err).
			Str("origin", params.Origin).
			Str("destination", params.Destination).
			Msg("flight search failed")
		return h.handleError(c, err)
	}

	return response.OK(c, &SearchResponse{
		SessionID:    middleware.GetSessionID(c),
		View:         state.View(),
		SearchParams: params,
		Results:      state.SearchResults,
		TotalResults: len(state.SearchResults),
	})
}

// Results handles GET /api/v1/sessions/:sessionId/results
//
// @Summary Sorted and filtered results
// @Tags search
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param sortBy query string false "price, duration or departure" default(price)
// @Param order query string false "asc or desc" default(asc)
// @Param mode query string false "exact or legacy comparison" default(exact)
// @Param minPrice query number false "Minimum base fare"
// @Param maxPrice query number false "Maximum base fare"
// @Param stops query string false "Comma separated: direct, 1-stop, 2-stops"
// @Param airlines query string false "Comma separated airline names"
// @Param maxDuration query int false "Maximum duration in hours"
// @Param refundable query bool false "Refundable fares only"
// @Success 200 {object} ResultsResponse
// @Success 303 "No search yet; see X-Booking-View"
// @Failure 400 {object} response.ErrorDetail "Invalid filter"
// @Router /sessions/{sessionId}/results [get]
func (h *BookingHandler) Results(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}

	sortOpts, filter, err := parseResultsQuery(c)
	if err != nil {
		return h.handleError(c, err)
	}

	results, err := h.useCase.Results(s, sortOpts, filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &ResultsResponse{
		SortBy:       sortOpts.Field,
		Order:        sortOpts.Order,
		Mode:         sortOpts.Mode,
		Results:      results,
		TotalResults: len(results),
	})
}

// SelectFlight handles POST /api/v1/sessions/:sessionId/selection
//
// @Summary Select a flight
// @Tags booking
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body SelectFlightRequest true "Offer to book"
// @Success 200 {object} SessionResponse
// @Success 303 "No search yet; see X-Booking-View"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /sessions/{sessionId}/selection [post]
func (h *BookingHandler) SelectFlight(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req SelectFlightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	state, err := h.useCase.SelectFlight(s, req.FlightID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(middleware.GetSessionID(c), state))
}

// Roster handles GET /api/v1/sessions/:sessionId/passengers
//
// @Summary Draft passenger roster
// @Tags booking
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} RosterResponse
// @Success 303 "No booking yet; see X-Booking-View"
// @Router /sessions/{sessionId}/passengers [get]
func (h *BookingHandler) Roster(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	roster, err := h.useCase.Roster(s)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &RosterResponse{Passengers: roster})
}

// UpdatePassenger handles PATCH /api/v1/sessions/:sessionId/passengers/:passengerId
//
// @Summary Edit a passenger
// @Tags booking
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param passengerId path string true "Passenger ID" example(adult-0)
// @Param request body PassengerUpdateRequest true "Fields to change"
// @Success 200 {object} domain.PassengerInfo
// @Failure 400 {object} response.ErrorDetail "Invalid update"
// @Failure 404 {object} response.ErrorDetail "Passenger not found"
// @Router /sessions/{sessionId}/passengers/{passengerId} [patch]
func (h *BookingHandler) UpdatePassenger(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req PassengerUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	passenger, err := h.useCase.UpdatePassenger(s, c.Param("passengerId"), toPassengerUpdate(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, passenger)
}

// SubmitPassengers handles POST /api/v1/sessions/:sessionId/passengers/submit
//
// @Summary Submit passenger details
// @Description Validates every passenger record and moves the booking to review.
// @Tags booking
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Success 303 "No booking yet; see X-Booking-View"
// @Failure 422 {object} response.ErrorDetail "Missing passenger fields"
// @Router /sessions/{sessionId}/passengers/submit [post]
func (h *BookingHandler) SubmitPassengers(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	state, err := h.useCase.SubmitPassengers(s)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(middleware.GetSessionID(c), state))
}

// Summary handles GET /api/v1/sessions/:sessionId/summary
//
// @Summary Fare summary
// @Tags booking
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} domain.BookingSummary
// @Success 303 "No booking yet; see X-Booking-View"
// @Router /sessions/{sessionId}/summary [get]
func (h *BookingHandler) Summary(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	summary, err := h.useCase.Summary(s)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, summary)
}

// SummaryPDF handles GET /api/v1/sessions/:sessionId/summary.pdf
//
// @Summary Fare summary as PDF
// @Tags booking
// @Produce application/pdf
// @Param sessionId path string true "Session ID"
// @Success 200 {file} binary
// @Success 303 "No booking yet; see X-Booking-View"
// @Router /sessions/{sessionId}/summary.pdf [get]
func (h *BookingHandler) SummaryPDF(c echo.Context) error {
	s, err := sessionStore(c)
	if err != nil {
		return h.handleError(c, err)
	}
	summary, err := h.useCase.Summary(s)
	if err != nil {
		return h.handleError(c, err)
	}

	body, err := h.renderer.Render(summary)
	if err != nil {
		h.requestLog(c).Error().Err(err).Msg("render fare summary")
		return response.InternalServerError(c)
	}
	return response.Attachment(c, document.ContentType, h.renderer.Filename(summary), body)
}

func (h *BookingHandler) requestLog(c echo.Context) *logger.Logger {
	return h.log.WithRequestID(middleware.GetRequestID(c)).WithSession(middleware.GetSessionID(c))
}

// sessionStore returns the store bound by the session middleware.
func sessionStore(c echo.Context) (*store.Store, error) {
	s, err := store.FromContext(c.Request().Context())
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, errBadBody) {
		return response.InvalidRequestBody(c)
	}

	// Booking steps reached without a search or selection send the client back to search
	if errors.Is(err, domain.ErrMissingBookingContext) {
		return redirectToSearch(c)
	}

	var rosterErr *domain.RosterValidationError
	if errors.As(err, &rosterErr) {
		return response.PassengerValidationError(c, rosterErr.Messages)
	}

	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return response.SessionNotFound(c)
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrPassengerNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrProviderTimeout), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrSearchFailed):
		return response.SearchFailed(c, "")
	}

	h.requestLog(c).Error().Err(err).Msg("unhandled error")
	return response.InternalServerError(c)
}

// redirectToSearch answers 303 See Other pointing at the session state.
func redirectToSearch(c echo.Context) error {
	c.Response().Header().Set(BookingViewHeader, string(domain.ViewSearch))
	return c.Redirect(http.StatusSeeOther, sessionPath(middleware.GetSessionID(c)))
}
