package usecase

import (
	"sort"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// SortResults returns a sorted copy of results. The sort is stable: offers
// that compare equal keep their original relative order in both directions.
//
// In CompareLegacy mode durations are compared by their hour component only
// and departure times as plain strings ("9:00" sorts after "12:00", "3h 50m"
// ties "3h 0m").
// CompareExact compares full minutes for both.
func SortResults(results []domain.FlightResult, opts domain.SortOptions) []domain.FlightResult {
	out := make([]domain.FlightResult, len(results))
	copy(out, results)
	if len(out) <= 1 {
		return out
	}

	less := lessFunc(opts.Field, opts.Mode)
	if opts.Order == domain.SortDesc {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func lessFunc(field domain.SortField, mode domain.CompareMode) func(a, b domain.FlightResult) bool {
	legacy := mode == domain.CompareLegacy

	switch field {
	case domain.SortByDuration:
		if legacy {
			return func(a, b domain.FlightResult) bool { return a.DurationHours() < b.DurationHours() }
		}
		return func(a, b domain.FlightResult) bool { return a.DurationMinutes() < b.DurationMinutes() }
	case domain.SortByDeparture:
		if legacy {
			return func(a, b domain.FlightResult) bool { return a.DepartureTime < b.DepartureTime }
		}
		return func(a, b domain.FlightResult) bool { return a.DepartureMinutes() < b.DepartureMinutes() }
	default:
		return func(a, b domain.FlightResult) bool { return a.Price < b.Price }
	}
}
