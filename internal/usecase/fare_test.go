package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

func TestComputeFare_AdultsAndChild(t *testing.T) {
	fare := ComputeFare(110, domain.PassengerCounts{Adult: 2, Children: 1})

	assert.InDelta(t, 302.50, fare.Subtotal, 0.001)
	assert.InDelta(t, 36.30, fare.TaxAmount, 0.001)
	assert.InDelta(t, 11.00, fare.DiscountAmount, 0.001)
	assert.InDelta(t, 338.80, fare.GrossTotal, 0.001)
	assert.InDelta(t, 321.86, fare.OfferTotal, 0.001)
	assert.Equal(t, 3, fare.TotalPassengers)

	require.Len(t, fare.Lines, 2)
	assert.Equal(t, domain.PassengerAdult, fare.Lines[0].Type)
	assert.InDelta(t, 220.00, fare.Lines[0].Amount, 0.001)
	assert.InDelta(t, 26.40, fare.Lines[0].Tax, 0.001)
	assert.Equal(t, domain.PassengerChild, fare.Lines[1].Type)
	assert.InDelta(t, 82.50, fare.Lines[1].UnitPrice, 0.001)
	assert.InDelta(t, 9.90, fare.Lines[1].Tax, 0.001)
	assert.InDelta(t, fare.TaxAmount, fare.LineTaxTotal(), 0.001)
}

func TestComputeFare_LineTaxMatchesTotalTax(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		counts domain.PassengerCounts
		tax    float64
		lines  []float64
	}{
		{
			name:   "remainder lands on the last line",
			base:   110.04,
			counts: domain.PassengerCounts{Adult: 1, Children: 1},
			tax:    23.11,
			lines:  []float64{13.20, 9.91},
		},
		{
			name:   "three blocks",
			base:   99.99,
			counts: domain.PassengerCounts{Adult: 2, Children: 3, Infant: 1},
			tax:    52.19,
			lines:  []float64{24.00, 27.00, 1.19},
		},
		{
			name:   "no remainder",
			base:   110,
			counts: domain.PassengerCounts{Adult: 2, Children: 1},
			tax:    36.30,
			lines:  []float64{26.40, 9.90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare := ComputeFare(tt.base, tt.counts)

			assert.InDelta(t, tt.tax, fare.TaxAmount, 0.001)
			require.Len(t, fare.Lines, len(tt.lines))
			for i, want := range tt.lines {
				assert.InDelta(t, want, fare.Lines[i].Tax, 0.001, "line %d", i)
			}
			assert.InDelta(t, fare.TaxAmount, fare.LineTaxTotal(), 0.001)
		})
	}
}

func TestComputeFare(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		counts   domain.PassengerCounts
		subtotal float64
		tax      float64
		gross    float64
		offer    float64
		lines    int
	}{
		{
			name:     "single adult",
			base:     100,
			counts:   domain.PassengerCounts{Adult: 1},
			subtotal: 100,
			tax:      12,
			gross:    112,
			offer:    106.40,
			lines:    1,
		},
		{
			name:     "adult with infant",
			base:     200,
			counts:   domain.PassengerCounts{Adult: 1, Infant: 1},
			subtotal: 220,
			tax:      26.40,
			gross:    246.40,
			offer:    234.08,
			lines:    2,
		},
		{
			name:     "rounding happens at the end",
			base:     123.45,
			counts:   domain.PassengerCounts{Adult: 1, Children: 1},
			subtotal: 216.04,
			tax:      25.92,
			gross:    241.96,
			offer:    229.86,
			lines:    2,
		},
		{
			name:     "zero base",
			base:     0,
			counts:   domain.PassengerCounts{Adult: 3},
			subtotal: 0,
			tax:      0,
			gross:    0,
			offer:    0,
			lines:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare := ComputeFare(tt.base, tt.counts)

			assert.InDelta(t, tt.subtotal, fare.Subtotal, 0.001)
			assert.InDelta(t, tt.tax, fare.TaxAmount, 0.001)
			assert.InDelta(t, tt.gross, fare.GrossTotal, 0.001)
			assert.InDelta(t, tt.offer, fare.OfferTotal, 0.001)
			assert.InDelta(t, RoundMoney(tt.base*DisplayDiscountRate), fare.DiscountAmount, 0.001)
			assert.Len(t, fare.Lines, tt.lines)
		})
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 0.13, RoundMoney(0.125))
	assert.Equal(t, -0.13, RoundMoney(-0.125))
	assert.Equal(t, 321.86, RoundMoney(321.86))
	assert.Equal(t, 0.0, RoundMoney(0.004))
}
