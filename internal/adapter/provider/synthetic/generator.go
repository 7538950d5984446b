// Package synthetic produces demo flight offers derived from the search
// parameters. The output shape is fixed; only stops, price and refundability
// vary with the injected randomness.
package synthetic

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// ProviderName is the unique identifier for the synthetic source.
const ProviderName = "synthetic"

// Offer generation constants.
const (
	BasePrice      = 110.0
	PriceStep      = 50.0
	PriceSpread    = 200
	Currency       = "USD"
	Aircraft       = "Boeing 777"
	flightNoOffset = 100
)

// Carrier is an airline the generator issues offers for.
type Carrier struct {
	Name string
	Logo string
	Code string
}

// Carriers are the airlines offered, in result order.
var Carriers = []Carrier{
	{Name: "Singapore Airlines", Logo: "🇸🇬", Code: "SQ"},
	{Name: "Qatar Airways", Logo: "🇶🇦", Code: "QR"},
	{Name: "Emirates", Logo: "🇦🇪", Code: "EK"},
	{Name: "Saudi Airlines", Logo: "🇸🇦", Code: "SV"},
	{Name: "Turkish Airlines", Logo: "🇹🇷", Code: "TK"},
}

// Generator implements domain.FlightSource with synthetic offers.
type Generator struct {
	rand Rand
}

// NewGenerator creates a Generator. A nil r uses SafeRand.
func NewGenerator(r Rand) *Generator {
	if r == nil {
		r = NewSafeRand()
	}
	return &Generator{rand: r}
}

// Name returns the provider identifier.
func (g *Generator) Name() string {
	return ProviderName
}

// Search returns one offer per carrier. Offer i departs at 12+i:i*10, arrives
// at 15+i:30+i*5 and takes 3+i hours and i*10 minutes. The first offer is
// always direct, the others have one or two stops.
func (g *Generator) Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	results := make([]domain.FlightResult, 0, len(Carriers))
	for i, c := range Carriers {
		stops := 0
		if i > 0 {
			stops = g.rand.Intn(2) + 1
		}
		price := BasePrice + PriceStep*float64(i) + float64(g.rand.Intn(PriceSpread))
		refundable := g.rand.Float64() > 0.5

		results = append(results, domain.FlightResult{
			ID:            fmt.Sprintf("flight-%d", i),
			Airline:       c.Name,
			AirlineLogo:   c.Logo,
			FlightNumber:  fmt.Sprintf("%s%d", c.Code, flightNoOffset+i),
			DepartureTime: fmt.Sprintf("%d:%02d", 12+i, i*10),
			ArrivalTime:   fmt.Sprintf("%d:%02d", 15+i, 30+i*5),
			Duration:      fmt.Sprintf("%dh %dm", 3+i, i*10),
			Stops:         stops,
			Price:         price,
			Currency:      Currency,
			Origin:        params.Origin,
			Destination:   params.Destination,
			Aircraft:      Aircraft,
			Refundable:    refundable,
			CabinClass:    params.CabinClass,
		})
	}

	return results, nil
}

// Ensure Generator implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Generator)(nil)
