package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DisplayDateLayout is the day / abbreviated month / year pattern used for
// dates stored in SearchParams (e.g., "01 Jan 2026").
const DisplayDateLayout = "02 Jan 2006"

// MaxPassengers bounds the total number of seats in one booking.
const MaxPassengers = 9

// TripType is the itinerary shape of a search.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

// IsValid reports whether t is a known trip type.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	default:
		return false
	}
}

// CabinClass is the service tier.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// IsValid reports whether c is a known cabin class.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// PassengerCounts is the number of seats requested per passenger type.
type PassengerCounts struct {
	Adult    int `json:"adult"`
	Children int `json:"children"`
	Infant   int `json:"infant"`
}

// DefaultPassengerCounts returns the initial form value: one adult.
func DefaultPassengerCounts() PassengerCounts {
	return PassengerCounts{Adult: 1}
}

// Total returns the number of seats across all types.
func (p PassengerCounts) Total() int {
	return p.Adult + p.Children + p.Infant
}

// Of returns the count for a passenger type.
func (p PassengerCounts) Of(t PassengerType) int {
	switch t {
	case PassengerAdult:
		return p.Adult
	case PassengerChild:
		return p.Children
	case PassengerInfant:
		return p.Infant
	default:
		return 0
	}
}

// Increment returns the counts with one more passenger of type t.
func (p PassengerCounts) Increment(t PassengerType) (PassengerCounts, error) {
	if !t.IsValid() {
		return p, fmt.Errorf("%w: unknown passenger type %q", ErrInvalidRequest, t)
	}
	if p.Total() >= MaxPassengers {
		return p, fmt.Errorf("%w: at most %d passengers per booking", ErrPassengerLimit, MaxPassengers)
	}
	next := p
	switch t {
	case PassengerAdult:
		next.Adult++
	case PassengerChild:
		next.Children++
	case PassengerInfant:
		next.Infant++
	}
	return next, nil
}

// Decrement returns the counts with one passenger of type t removed.
// Adults never drop below 1, children and infants never below 0; a rejected
// decrement returns the counts unchanged together with ErrPassengerFloor.
func (p PassengerCounts) Decrement(t PassengerType) (PassengerCounts, error) {
	if !t.IsValid() {
		return p, fmt.Errorf("%w: unknown passenger type %q", ErrInvalidRequest, t)
	}
	if p.Of(t) <= t.MinCount() {
		return p, fmt.Errorf("%w: %s count cannot go below %d", ErrPassengerFloor, t, t.MinCount())
	}
	next := p
	switch t {
	case PassengerAdult:
		next.Adult--
	case PassengerChild:
		next.Children--
	case PassengerInfant:
		next.Infant--
	}
	return next, nil
}

// validate records count violations into errs.
func (p PassengerCounts) validate(errs *ValidationErrors) {
	if p.Adult < PassengerAdult.MinCount() {
		errs.Add("passengers.adult", "at least 1 adult is required")
	}
	if p.Children < 0 {
		errs.Add("passengers.children", "children cannot be negative")
	}
	if p.Infant < 0 {
		errs.Add("passengers.infant", "infant cannot be negative")
	}
	if p.Total() > MaxPassengers {
		errs.Add("passengers", fmt.Sprintf("at most %d passengers per booking", MaxPassengers))
	}
}

// SearchParams is the validated search request held in the booking state.
type SearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`

	// ReturnDate is only set for round trips; nil means "no return leg".
	ReturnDate *string `json:"returnDate,omitempty"`

	Passengers PassengerCounts `json:"passenger"`
	TripType   TripType        `json:"tripType"`
	CabinClass CabinClass      `json:"class"`
}

// HasReturn reports whether the itinerary has a return leg.
func (s SearchParams) HasReturn() bool {
	return s.ReturnDate != nil
}

// SearchForm holds the raw fields of the search form before validation.
type SearchForm struct {
	TripType      TripType
	Origin        string
	Destination   string
	DepartureDate *time.Time
	ReturnDate    *time.Time
	Passengers    PassengerCounts
	CabinClass    CabinClass
}

// airportCodeRegex matches IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Build validates the form and produces SearchParams. Origin, destination and
// departure date are mandatory; a round trip additionally needs a return date.
// Dates may not lie before the calendar day of now, and the return may not
// precede the departure. All violations are reported together as
// *ValidationErrors.
func (f SearchForm) Build(now time.Time) (SearchParams, error) {
	errs := &ValidationErrors{}

	tripType := f.TripType
	if tripType == "" {
		tripType = TripRoundTrip
	}
	if !tripType.IsValid() {
		errs.Add("tripType", "tripType must be one of: one-way, round-trip, multi-city")
	}

	cabin := f.CabinClass
	if cabin == "" {
		cabin = CabinEconomy
	}
	if !cabin.IsValid() {
		errs.Add("class", "class must be one of: economy, business, first")
	}

	origin := normalizeAirport(f.Origin, "origin", errs)
	destination := normalizeAirport(f.Destination, "destination", errs)

	today := truncateToDay(now)
	if f.DepartureDate == nil {
		errs.Add("departureDate", "departureDate is required")
	} else if truncateToDay(*f.DepartureDate).Before(today) {
		errs.Add("departureDate", "departureDate cannot be in the past")
	}

	if tripType == TripRoundTrip {
		switch {
		case f.ReturnDate == nil:
			errs.Add("returnDate", "returnDate is required for round-trip")
		case f.DepartureDate != nil && truncateToDay(*f.ReturnDate).Before(truncateToDay(*f.DepartureDate)):
			errs.Add("returnDate", "returnDate cannot be before departureDate")
		case truncateToDay(*f.ReturnDate).Before(today):
			errs.Add("returnDate", "returnDate cannot be in the past")
		}
	}

	f.Passengers.validate(errs)

	if errs.HasErrors() {
		return SearchParams{}, errs
	}

	params := SearchParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: f.DepartureDate.Format(DisplayDateLayout),
		Passengers:    f.Passengers,
		TripType:      tripType,
		CabinClass:    cabin,
	}
	if tripType == TripRoundTrip {
		ret := f.ReturnDate.Format(DisplayDateLayout)
		params.ReturnDate = &ret
	}
	return params, nil
}

func normalizeAirport(code, field string, errs *ValidationErrors) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		errs.Add(field, field+" is required")
		return ""
	}
	if !airportCodeRegex.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
	return code
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
