package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

func TestRequestValidator_Messages(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name   string
		req    any
		want   map[string]string
		wantOK bool
	}{
		{
			name:   "valid search",
			req:    &SearchRequest{Origin: "DAC", Destination: "DXB", DepartureDate: "2026-12-01", Passengers: PassengerCountsDTO{Adult: 1}},
			wantOK: true,
		},
		{
			name: "required fields",
			req:  &SearchRequest{Passengers: PassengerCountsDTO{Adult: 1}},
			want: map[string]string{
				"origin":        "origin is required",
				"destination":   "destination is required",
				"departureDate": "departureDate is required",
			},
		},
		{
			name: "format and enums",
			req: &SearchRequest{
				Origin: "DAC", Destination: "DXB", DepartureDate: "2026/12/01",
				Class: "premium", Passengers: PassengerCountsDTO{Adult: 0},
			},
			want: map[string]string{
				"departureDate":    "departureDate must be a date in YYYY-MM-DD format",
				"class":            "class must be one of: economy, business, first",
				"passengers.adult": "passengers.adult must be at least 1",
			},
		},
		{
			name: "string length",
			req:  &PassengerUpdateRequest{Phone: strPtr("0123456789012345678901234567890123")},
			want: map[string]string{"phone": "phone must be at most 30 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			var verrs *domain.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.want, verrs.ToMap())
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestToSearchForm(t *testing.T) {
	req := &SearchRequest{
		TripType:      "one-way",
		Origin:        "dac",
		Destination:   "cgp",
		DepartureDate: "2026-12-01",
		ReturnDate:    "2026-12-05",
		Passengers:    PassengerCountsDTO{Adult: 1, Infant: 1},
		Class:         "business",
	}

	form, err := toSearchForm(req)

	require.NoError(t, err)
	require.NotNil(t, form.DepartureDate)
	assert.Equal(t, "2026-12-01", form.DepartureDate.Format("2006-01-02"))
	assert.Nil(t, form.ReturnDate, "return date is dropped for one-way trips")
	assert.Equal(t, domain.CabinBusiness, form.CabinClass)
	assert.Equal(t, domain.PassengerCounts{Adult: 1, Infant: 1}, form.Passengers)
}

func TestSearchRequest_Normalize(t *testing.T) {
	req := &SearchRequest{TripType: " One-Way ", Class: "BUSINESS"}

	req.normalize()

	assert.Equal(t, "one-way", req.TripType)
	assert.Equal(t, "business", req.Class)
	assert.Equal(t, PassengerCountsDTO{Adult: 1}, req.Passengers)

	req = &SearchRequest{Passengers: PassengerCountsDTO{Adult: 2, Infant: 1}}
	req.normalize()
	assert.Equal(t, PassengerCountsDTO{Adult: 2, Infant: 1}, req.Passengers, "explicit counts are kept")
}

func TestParseResultsQuery_Defaults(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/results", nil), httptest.NewRecorder())

	sortOpts, filter, err := parseResultsQuery(c)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSortOptions(), sortOpts)
	assert.Nil(t, filter)
}

func TestParseResultsQuery_Filters(t *testing.T) {
	e := echo.New()
	target := "/results?sortBy=DURATION&order=desc&mode=legacy&stops=direct&stops=1-stop&airlines=Emirates,%20Qatar%20Airways&maxPrice=500"
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())

	sortOpts, filter, err := parseResultsQuery(c)

	require.NoError(t, err)
	assert.Equal(t, domain.SortOptions{Field: domain.SortByDuration, Order: domain.SortDesc, Mode: domain.CompareLegacy}, sortOpts)
	require.NotNil(t, filter)
	assert.Equal(t, []domain.StopsBucket{domain.StopsDirect, domain.StopsOne}, filter.Stops)
	assert.Equal(t, []string{"Emirates", "Qatar Airways"}, filter.Airlines)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 500.0, *filter.MaxPrice)
	assert.Nil(t, filter.MinPrice)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(nil))
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c,"}))
}
