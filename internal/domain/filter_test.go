package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOptions(t *testing.T) {
	tests := []struct {
		input     string
		wantField SortField
		wantOrder SortOrder
		wantMode  CompareMode
	}{
		{input: "price", wantField: SortByPrice, wantOrder: SortAsc, wantMode: CompareExact},
		{input: "DURATION", wantField: SortByDuration, wantOrder: SortAsc, wantMode: CompareExact},
		{input: "departure", wantField: SortByDeparture, wantOrder: SortAsc, wantMode: CompareExact},
		{input: "", wantField: SortByPrice, wantOrder: SortAsc, wantMode: CompareExact},
		{input: "best_value", wantField: SortByPrice, wantOrder: SortAsc, wantMode: CompareExact},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.wantField, ParseSortField(tt.input))
			assert.Equal(t, tt.wantOrder, ParseSortOrder(tt.input))
			assert.Equal(t, tt.wantMode, ParseCompareMode(tt.input))
		})
	}

	assert.Equal(t, SortDesc, ParseSortOrder("Desc"))
	assert.Equal(t, CompareLegacy, ParseCompareMode("legacy"))
	assert.Equal(t, SortOptions{Field: SortByPrice, Order: SortAsc, Mode: CompareExact}, DefaultSortOptions())
}

func TestStopsBucket_Contains(t *testing.T) {
	tests := []struct {
		bucket StopsBucket
		stops  int
		want   bool
	}{
		{StopsDirect, 0, true},
		{StopsDirect, 1, false},
		{StopsOne, 1, true},
		{StopsOne, 2, false},
		{StopsTwoPlus, 2, true},
		{StopsTwoPlus, 4, true},
		{StopsTwoPlus, 1, false},
		{StopsBucket("3-stops"), 3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bucket.Contains(tt.stops), "%s contains %d", tt.bucket, tt.stops)
	}
	assert.False(t, StopsBucket("nonstop").IsValid())
}

func TestFilterOptions_MatchesFlight(t *testing.T) {
	flight := FlightResult{
		ID:         "flight-1",
		Airline:    "Qatar Airways",
		Duration:   "4h 10m",
		Stops:      1,
		Price:      250,
		Refundable: false,
	}

	tests := []struct {
		name   string
		filter *FilterOptions
		want   bool
	}{
		{name: "nil filter matches", filter: nil, want: true},
		{name: "empty filter matches", filter: &FilterOptions{}, want: true},
		{name: "min price inclusive", filter: &FilterOptions{MinPrice: floatPtr(250)}, want: true},
		{name: "below min price", filter: &FilterOptions{MinPrice: floatPtr(250.01)}, want: false},
		{name: "max price inclusive", filter: &FilterOptions{MaxPrice: floatPtr(250)}, want: true},
		{name: "above max price", filter: &FilterOptions{MaxPrice: floatPtr(200)}, want: false},
		{name: "stops bucket match", filter: &FilterOptions{Stops: []StopsBucket{StopsDirect, StopsOne}}, want: true},
		{name: "stops bucket miss", filter: &FilterOptions{Stops: []StopsBucket{StopsDirect}}, want: false},
		{name: "airline case-insensitive", filter: &FilterOptions{Airlines: []string{" qatar airways "}}, want: true},
		{name: "airline miss", filter: &FilterOptions{Airlines: []string{"Emirates"}}, want: false},
		{name: "duration within hours", filter: &FilterOptions{MaxDurationHours: intPtr(5)}, want: true},
		{name: "duration over hours", filter: &FilterOptions{MaxDurationHours: intPtr(4)}, want: false},
		{name: "refundable only", filter: &FilterOptions{RefundableOnly: true}, want: false},
		{
			name: "all criteria must match",
			filter: &FilterOptions{
				MinPrice: floatPtr(100),
				MaxPrice: floatPtr(300),
				Stops:    []StopsBucket{StopsOne},
				Airlines: []string{"Emirates"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchesFlight(flight))
		})
	}
}

func TestFilterOptions_IsEmpty(t *testing.T) {
	var nilFilter *FilterOptions
	assert.True(t, nilFilter.IsEmpty())
	assert.True(t, (&FilterOptions{}).IsEmpty())
	assert.True(t, (&FilterOptions{Stops: []StopsBucket{}}).IsEmpty())
	assert.False(t, (&FilterOptions{RefundableOnly: true}).IsEmpty())
	assert.False(t, (&FilterOptions{MaxPrice: floatPtr(0)}).IsEmpty())
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
