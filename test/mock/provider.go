// Package mock provides test doubles for the flight booking service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// Source is a configurable mock implementation of domain.FlightSource.
type Source struct {
	name    string
	flights []domain.FlightResult
	err     error
	delay   time.Duration

	mu         sync.Mutex
	callCount  int
	lastParams domain.SearchParams
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithFlights configures the source to return the given offers.
func (s *Source) WithFlights(flights []domain.FlightResult) *Source {
	s.flights = flights
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return s.name
}

// Search implements domain.FlightSource. It respects context cancellation,
// applies the configured delay, and returns configured offers or error.
func (s *Source) Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
	s.mu.Lock()
	s.callCount++
	s.lastParams = params
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.FlightResult(nil), s.flights...), nil
}

// CallCount returns the number of times Search was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastParams returns the parameters of the most recent call.
func (s *Source) LastParams() domain.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastParams
}

// Ensure Source implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Source)(nil)

// SampleFlights returns count offers for the route. Prices rise by 50 from
// 300 and departures are two hours apart from 06:00.
func SampleFlights(origin, destination string, count int) []domain.FlightResult {
	flights := make([]domain.FlightResult, count)
	for i := range flights {
		flights[i] = domain.FlightResult{
			ID:            fmt.Sprintf("flight-%d", i),
			Airline:       "Emirates",
			AirlineLogo:   "🇦🇪",
			FlightNumber:  fmt.Sprintf("EK%d", 100+i),
			DepartureTime: fmt.Sprintf("%02d:00", 6+2*i),
			ArrivalTime:   fmt.Sprintf("%02d:30", 11+2*i),
			Duration:      "5h 30m",
			Stops:         i % 3,
			Price:         300 + float64(50*i),
			Currency:      "USD",
			Origin:        origin,
			Destination:   destination,
			Aircraft:      "Boeing 777",
			Refundable:    i%2 == 0,
			CabinClass:    domain.CabinEconomy,
		}
	}
	return flights
}
