package remote

import (
	"errors"
	"strings"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// DefaultCurrency is assumed when an offer omits its currency.
const DefaultCurrency = "USD"

var (
	errMissingID    = errors.New("missing id")
	errMissingPrice = errors.New("missing or negative price")
)

// normalize converts endpoint offers to domain results, skipping offers that
// cannot be shown. It reports how many were skipped.
func normalize(payloads []flightPayload, params domain.SearchParams) ([]domain.FlightResult, int) {
	results := make([]domain.FlightResult, 0, len(payloads))
	skipped := 0

	for _, p := range payloads {
		r, err := normalizeFlight(p, params)
		if err != nil {
			skipped++
			continue
		}
		results = append(results, r)
	}

	return results, skipped
}

// normalizeFlight converts a single offer. Missing route and cabin fields are
// taken from the search parameters.
func normalizeFlight(p flightPayload, params domain.SearchParams) (domain.FlightResult, error) {
	if strings.TrimSpace(p.ID) == "" {
		return domain.FlightResult{}, errMissingID
	}
	if p.Price == nil || *p.Price < 0 {
		return domain.FlightResult{}, errMissingPrice
	}

	cabin := domain.CabinClass(strings.ToLower(p.Class))
	if !cabin.IsValid() {
		cabin = params.CabinClass
	}

	return domain.FlightResult{
		ID:            p.ID,
		Airline:       p.Airline,
		AirlineLogo:   p.AirlineLogo,
		FlightNumber:  p.FlightNumber,
		DepartureTime: p.DepartureTime,
		ArrivalTime:   p.ArrivalTime,
		Duration:      p.Duration,
		Stops:         max(p.Stops, 0),
		Price:         *p.Price,
		Currency:      firstOr(strings.ToUpper(p.Currency), DefaultCurrency),
		Origin:        firstOr(p.Origin, params.Origin),
		Destination:   firstOr(p.Destination, params.Destination),
		Aircraft:      p.Aircraft,
		Refundable:    p.Refundable,
		CabinClass:    cabin,
	}, nil
}

func firstOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
