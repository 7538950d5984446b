package synthetic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// fixedRand returns the same values on every call.
type fixedRand struct {
	intn    int
	float64 float64
}

func (f fixedRand) Intn(n int) int {
	if f.intn >= n {
		return n - 1
	}
	return f.intn
}

func (f fixedRand) Float64() float64 { return f.float64 }

func searchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: "01 Jan 2026",
		Passengers:    domain.PassengerCounts{Adult: 1},
		TripType:      domain.TripOneWay,
		CabinClass:    domain.CabinBusiness,
	}
}

func TestGenerator_Name(t *testing.T) {
	assert.Equal(t, "synthetic", NewGenerator(nil).Name())
}

func TestGenerator_Search_ZeroRand(t *testing.T) {
	g := NewGenerator(fixedRand{})

	results, err := g.Search(context.Background(), searchParams())
	require.NoError(t, err)
	require.Len(t, results, 5)

	first := results[0]
	assert.Equal(t, "flight-0", first.ID)
	assert.Equal(t, "Singapore Airlines", first.Airline)
	assert.Equal(t, "🇸🇬", first.AirlineLogo)
	assert.Equal(t, "SQ100", first.FlightNumber)
	assert.Equal(t, "12:00", first.DepartureTime)
	assert.Equal(t, "15:30", first.ArrivalTime)
	assert.Equal(t, "3h 0m", first.Duration)
	assert.Equal(t, 0, first.Stops)
	assert.Equal(t, 110.0, first.Price)
	assert.Equal(t, "USD", first.Currency)
	assert.Equal(t, "Boeing 777", first.Aircraft)
	assert.False(t, first.Refundable)
	assert.Equal(t, "DAC", first.Origin)
	assert.Equal(t, "DXB", first.Destination)
	assert.Equal(t, domain.CabinBusiness, first.CabinClass)

	last := results[4]
	assert.Equal(t, "flight-4", last.ID)
	assert.Equal(t, "TK104", last.FlightNumber)
	assert.Equal(t, "16:40", last.DepartureTime)
	assert.Equal(t, "19:50", last.ArrivalTime)
	assert.Equal(t, "7h 40m", last.Duration)
	assert.Equal(t, 1, last.Stops)
	assert.Equal(t, 310.0, last.Price)
}

func TestGenerator_Search_MaxRand(t *testing.T) {
	g := NewGenerator(fixedRand{intn: 1000, float64: 0.99})

	results, err := g.Search(context.Background(), searchParams())
	require.NoError(t, err)

	for i, r := range results {
		floor := BasePrice + PriceStep*float64(i)
		assert.Equal(t, floor+199, r.Price, r.ID)
		assert.True(t, r.Refundable, r.ID)
		if i == 0 {
			assert.Equal(t, 0, r.Stops)
		} else {
			assert.Equal(t, 2, r.Stops, r.ID)
		}
	}
}

func TestGenerator_Search_SafeRandBounds(t *testing.T) {
	g := NewGenerator(nil)

	for run := 0; run < 20; run++ {
		results, err := g.Search(context.Background(), searchParams())
		require.NoError(t, err)

		for i, r := range results {
			floor := BasePrice + PriceStep*float64(i)
			assert.GreaterOrEqual(t, r.Price, floor)
			assert.Less(t, r.Price, floor+PriceSpread)
			if i > 0 {
				assert.GreaterOrEqual(t, r.Stops, 1)
				assert.LessOrEqual(t, r.Stops, 2)
			}
		}
	}
}

func TestGenerator_Search_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(nil).Search(ctx, searchParams())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeRand(t *testing.T) {
	r := NewSafeRand()

	assert.Equal(t, 0, r.Intn(0))
	for i := 0; i < 100; i++ {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)

		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
