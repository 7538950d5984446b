// Package domain contains the core entities and rules of the flight booking flow.
// The types here are transport-agnostic: HTTP DTOs and provider payloads are
// converted into them at the edges.
package domain

import (
	"context"
	"strconv"
	"strings"
)

// FlightResult is a single flight offer shown on the results page.
// Offers are value types; once produced they are never modified.
type FlightResult struct {
	// ID identifies the offer within one result list (e.g., "flight-0")
	ID string `json:"id"`

	// Airline is the carrier display name (e.g., "Emirates")
	Airline string `json:"airline"`

	// AirlineLogo is the carrier emblem shown next to the name
	AirlineLogo string `json:"airlineLogo"`

	// FlightNumber is the marketing flight number (e.g., "EK102")
	FlightNumber string `json:"flightNumber"`

	// DepartureTime is the local departure time as "H:M"
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local arrival time as "H:M"
	ArrivalTime string `json:"arrivalTime"`

	// Duration is the block time formatted as "Xh Ym"
	Duration string `json:"duration"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// Price is the base adult fare
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code of Price
	Currency string `json:"currency"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Aircraft is the equipment type (e.g., "Boeing 777")
	Aircraft string `json:"aircraft"`

	Refundable bool `json:"refundable"`

	// CabinClass is the service tier the fare was quoted for
	CabinClass CabinClass `json:"class"`
}

// FlightSource produces flight offers for a set of search parameters.
// The remote search endpoint and the synthetic generator both implement it.
//
//go:generate mockgen -source=flight.go -destination=mock_flight_source.go -package=domain
type FlightSource interface {
	// Name returns a short identifier used in logs and errors.
	Name() string

	// Search returns offers for the given parameters.
	Search(ctx context.Context, params SearchParams) ([]FlightResult, error)
}

// DurationHours returns the leading hour component of Duration ("5h 20m" -> 5).
// Minutes are ignored. Unparseable values yield 0.
func (f FlightResult) DurationHours() int {
	hours, _, _ := strings.Cut(f.Duration, "h")
	n, err := strconv.Atoi(strings.TrimSpace(hours))
	if err != nil {
		return 0
	}
	return n
}

// DurationMinutes returns the full duration in minutes ("5h 20m" -> 320).
func (f FlightResult) DurationMinutes() int {
	total := f.DurationHours() * 60
	_, rest, found := strings.Cut(f.Duration, "h")
	if !found {
		rest = f.Duration
	}
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "m"))
	if rest == "" {
		return total
	}
	if mins, err := strconv.Atoi(rest); err == nil {
		total += mins
	}
	return total
}

// DepartureMinutes returns the departure time as minutes after midnight.
// Both "13:10" and the unpadded "12:0" forms are accepted; invalid values yield -1.
func (f FlightResult) DepartureMinutes() int {
	return clockMinutes(f.DepartureTime)
}

func clockMinutes(s string) int {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return -1
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hour < 0 {
		return -1
	}
	minute, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil || minute < 0 || minute > 59 {
		return -1
	}
	return hour*60 + minute
}

// FindFlight returns the offer with the given id.
func FindFlight(results []FlightResult, id string) (FlightResult, bool) {
	for _, r := range results {
		if r.ID == id {
			return r, true
		}
	}
	return FlightResult{}, false
}
