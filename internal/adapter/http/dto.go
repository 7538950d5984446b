package http

import "github.com/flight-search/flight-booking-system/internal/domain"

// SearchRequest is the body of POST /sessions/:sessionId/search.
type SearchRequest struct {
	// TripType is one-way, round-trip or multi-city (default round-trip)
	TripType string `json:"tripType" validate:"omitempty,oneof=one-way round-trip multi-city" example:"round-trip"`

	// Origin is the IATA code of the departure airport (e.g., "DAC")
	Origin string `json:"origin" validate:"required" example:"DAC"`

	// Destination is the IATA code of the arrival airport (e.g., "DXB")
	Destination string `json:"destination" validate:"required" example:"DXB"`

	// DepartureDate is YYYY-MM-DD
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02" example:"2026-12-01"`

	// ReturnDate is YYYY-MM-DD; required for round trips
	ReturnDate string `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-12-08"`

	Passengers PassengerCountsDTO `json:"passengers"`

	// Class is economy, business or first (default economy)
	Class string `json:"class,omitempty" validate:"omitempty,oneof=economy business first" example:"economy"`
}

// PassengerCountsDTO is the seat count per passenger type.
type PassengerCountsDTO struct {
	Adult    int `json:"adult" validate:"min=1,max=9" example:"1"`
	Children int `json:"children" validate:"min=0,max=9" example:"0"`
	Infant   int `json:"infant" validate:"min=0,max=9" example:"0"`
}

// SelectFlightRequest is the body of POST /sessions/:sessionId/selection.
type SelectFlightRequest struct {
	FlightID string `json:"flightId" validate:"required" example:"flight-0"`
}

// PassengerUpdateRequest is the body of PATCH /sessions/:sessionId/passengers/:passengerId.
// Omitted fields keep their current value.
type PassengerUpdateRequest struct {
	Title          *string `json:"title,omitempty" validate:"omitempty,max=20"`
	FirstName      *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName       *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,max=20"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty" validate:"omitempty,max=10"`
	Country        *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Email          *string `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	PassportNumber *string `json:"passportNumber,omitempty" validate:"omitempty,max=20"`
}

// SessionResponse is the state of a booking session.
type SessionResponse struct {
	SessionID string              `json:"sessionId"`
	View      domain.View         `json:"view"`
	Step      string              `json:"step"`
	State     domain.BookingState `json:"state"`
}

// SearchResponse is returned once a search has completed.
type SearchResponse struct {
	SessionID    string                `json:"sessionId"`
	View         domain.View           `json:"view"`
	SearchParams domain.SearchParams   `json:"searchParams"`
	Results      []domain.FlightResult `json:"results"`
	TotalResults int                   `json:"totalResults"`
}

// ResultsResponse is the sorted and filtered view of the session's results.
type ResultsResponse struct {
	SortBy       domain.SortField      `json:"sortBy"`
	Order        domain.SortOrder      `json:"order"`
	Mode         domain.CompareMode    `json:"mode"`
	Results      []domain.FlightResult `json:"results"`
	TotalResults int                   `json:"totalResults"`
}

// RosterResponse is the draft passenger roster.
type RosterResponse struct {
	Passengers []domain.PassengerInfo `json:"passengers"`
}

// AirportsResponse is the airport catalogue.
type AirportsResponse struct {
	Airports []domain.Airport `json:"airports"`
}
