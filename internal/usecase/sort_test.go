package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

func sortFixture() []domain.FlightResult {
	return []domain.FlightResult{
		{ID: "a", Price: 300, Duration: "3h 50m", DepartureTime: "9:00"},
		{ID: "b", Price: 150, Duration: "3h 0m", DepartureTime: "12:00"},
		{ID: "c", Price: 300, Duration: "4h 10m", DepartureTime: "13:10"},
		{ID: "d", Price: 200, Duration: "2h 45m", DepartureTime: "10:30"},
	}
}

func TestSortResults(t *testing.T) {
	tests := []struct {
		name string
		opts domain.SortOptions
		want []string
	}{
		{
			name: "price ascending keeps ties in order",
			opts: domain.SortOptions{Field: domain.SortByPrice, Order: domain.SortAsc},
			want: []string{"b", "d", "a", "c"},
		},
		{
			name: "price descending keeps ties in order",
			opts: domain.SortOptions{Field: domain.SortByPrice, Order: domain.SortDesc},
			want: []string{"a", "c", "d", "b"},
		},
		{
			name: "exact duration",
			opts: domain.SortOptions{Field: domain.SortByDuration, Order: domain.SortAsc, Mode: domain.CompareExact},
			want: []string{"d", "b", "a", "c"},
		},
		{
			name: "legacy duration compares hours only",
			opts: domain.SortOptions{Field: domain.SortByDuration, Order: domain.SortAsc, Mode: domain.CompareLegacy},
			want: []string{"d", "a", "b", "c"},
		},
		{
			name: "exact departure is chronological",
			opts: domain.SortOptions{Field: domain.SortByDeparture, Order: domain.SortAsc, Mode: domain.CompareExact},
			want: []string{"a", "d", "b", "c"},
		},
		{
			name: "legacy departure compares strings",
			opts: domain.SortOptions{Field: domain.SortByDeparture, Order: domain.SortAsc, Mode: domain.CompareLegacy},
			want: []string{"d", "b", "c", "a"},
		},
		{
			name: "exact departure descending",
			opts: domain.SortOptions{Field: domain.SortByDeparture, Order: domain.SortDesc, Mode: domain.CompareExact},
			want: []string{"c", "b", "d", "a"},
		},
		{
			name: "unknown field falls back to price",
			opts: domain.SortOptions{Field: "score", Order: domain.SortAsc},
			want: []string{"b", "d", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortResults(sortFixture(), tt.opts)))
		})
	}
}

func TestSortResults_DoesNotMutateInput(t *testing.T) {
	flights := sortFixture()

	_ = SortResults(flights, domain.DefaultSortOptions())

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(flights))
}

func TestSortResults_Empty(t *testing.T) {
	assert.Empty(t, SortResults(nil, domain.DefaultSortOptions()))
	assert.Len(t, SortResults(sortFixture()[:1], domain.DefaultSortOptions()), 1)
}

func TestSortResults_UnpaddedDepartureTimes(t *testing.T) {
	flights := []domain.FlightResult{
		{ID: "morning", DepartureTime: "9:00"},
		{ID: "noon", DepartureTime: "12:00"},
		{ID: "noon-five", DepartureTime: "12:5"},
		{ID: "noon-thirty", DepartureTime: "12:30"},
	}

	legacy := SortResults(flights, domain.SortOptions{Field: domain.SortByDeparture, Order: domain.SortAsc, Mode: domain.CompareLegacy})
	assert.Equal(t, []string{"noon", "noon-thirty", "noon-five", "morning"}, ids(legacy),
		"string comparison puts 9:00 after 12:00 and 12:5 after 12:30")

	exact := SortResults(flights, domain.SortOptions{Field: domain.SortByDeparture, Order: domain.SortAsc, Mode: domain.CompareExact})
	assert.Equal(t, []string{"morning", "noon", "noon-five", "noon-thirty"}, ids(exact))
}
