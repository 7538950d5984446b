// Package usecase contains the booking flow: search orchestration, result
// views, passenger roster handling and fare computation.
package usecase

import (
	"github.com/flight-search/flight-booking-system/internal/domain"
)

// ApplyFilters returns the offers matching every criterion of opts, in their
// original order. A nil or empty opts returns a copy of all offers.
func ApplyFilters(results []domain.FlightResult, opts *domain.FilterOptions) []domain.FlightResult {
	out := make([]domain.FlightResult, 0, len(results))
	if opts.IsEmpty() {
		return append(out, results...)
	}

	for _, r := range results {
		if opts.MatchesFlight(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByStops keeps offers in any of the given stop buckets.
func FilterByStops(results []domain.FlightResult, buckets ...domain.StopsBucket) []domain.FlightResult {
	return ApplyFilters(results, &domain.FilterOptions{Stops: buckets})
}

// FilterByAirlines keeps offers operated by one of the named airlines.
func FilterByAirlines(results []domain.FlightResult, airlines ...string) []domain.FlightResult {
	return ApplyFilters(results, &domain.FilterOptions{Airlines: airlines})
}

// FilterByPriceRange keeps offers priced within [min, max]; nil bounds are open.
func FilterByPriceRange(results []domain.FlightResult, min, max *float64) []domain.FlightResult {
	return ApplyFilters(results, &domain.FilterOptions{MinPrice: min, MaxPrice: max})
}
