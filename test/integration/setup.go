// Package integration provides helpers and integration tests for the flight booking service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, and flight sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-system/internal/adapter/document"
	httpAdapter "github.com/flight-search/flight-booking-system/internal/adapter/http"
	"github.com/flight-search/flight-booking-system/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/logger"
	"github.com/flight-search/flight-booking-system/internal/store"
	"github.com/flight-search/flight-booking-system/internal/usecase"
	"github.com/flight-search/flight-booking-system/test/testutil"
)

// TestServer wraps a fully wired Echo instance for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Sessions *store.Registry
}

// NewTestServer wires the middleware chain, booking use case and handler
// around the given sources.
func NewTestServer(remote, synthetic domain.FlightSource, mode usecase.SearchMode) *TestServer {
	clock := testutil.Clock()
	log := logger.Nop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)

	search := usecase.NewFlightSearchUseCase(remote, synthetic, &usecase.Config{
		Mode:    mode,
		Timeout: 2 * time.Second,
	}, log.Logger)
	sessions := store.NewRegistry(0, clock)
	handler := httpAdapter.NewBookingHandler(
		usecase.NewBookingUseCase(search, clock),
		sessions,
		document.NewSummaryRenderer(clock),
		log,
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{Echo: e, Sessions: sessions}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string, body any) Response {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateSession starts a session and returns its id.
func (ts *TestServer) CreateSession() (string, Response) {
	resp := ts.Do(http.MethodPost, "/api/v1/sessions", nil)
	var session httpAdapter.SessionResponse
	_ = json.Unmarshal(resp.Body, &session)
	return session.SessionID, resp
}

// SessionPath returns the API path of a session, with optional suffix.
func SessionPath(id string, suffix ...string) string {
	path := "/api/v1/sessions/" + id
	for _, s := range suffix {
		path += s
	}
	return path
}

// Decode unmarshals the response body into a T.
func Decode[T any](r Response) (T, error) {
	var out T
	err := json.Unmarshal(r.Body, &out)
	return out, err
}

// DefaultSearchRequest returns a valid round trip search for two adults.
func DefaultSearchRequest() httpAdapter.SearchRequest {
	return httpAdapter.SearchRequest{
		TripType:      string(domain.TripRoundTrip),
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: testutil.DaysFromNow(30),
		ReturnDate:    testutil.DaysFromNow(37),
		Passengers:    httpAdapter.PassengerCountsDTO{Adult: 2},
		Class:         string(domain.CabinEconomy),
	}
}

// CompletePassenger returns an update filling every mandatory field.
func CompletePassenger(adult bool) httpAdapter.PassengerUpdateRequest {
	req := httpAdapter.PassengerUpdateRequest{
		Title:       testutil.Ptr("Dr"),
		FirstName:   testutil.Ptr("Noor"),
		LastName:    testutil.Ptr("Rahman"),
		Gender:      testutil.Ptr("F"),
		DateOfBirth: testutil.Ptr("1988-04-12"),
		Country:     testutil.Ptr("Bangladesh"),
	}
	if adult {
		req.PassportNumber = testutil.Ptr("BX0123456")
	}
	return req
}
