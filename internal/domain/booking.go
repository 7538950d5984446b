package domain

// BookingStep is the position in the post-selection checkout flow.
type BookingStep int

// Checkout steps in order.
const (
	StepDetails BookingStep = iota
	StepReview
	StepPayment
)

// String returns the step name.
func (s BookingStep) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is a known step.
func (s BookingStep) IsValid() bool {
	return s >= StepDetails && s <= StepPayment
}

// View is the screen the client should show next.
type View string

// Views of the booking flow.
const (
	ViewSearch  View = "search"
	ViewResults View = "results"
	ViewBooking View = "booking"
)

// BookingState is the complete state of one booking session.
type BookingState struct {
	SearchParams   *SearchParams   `json:"searchParams"`
	SearchResults  []FlightResult  `json:"searchResults"`
	SelectedFlight *FlightResult   `json:"selectedFlight"`
	Passengers     []PassengerInfo `json:"passengers"`
	IsLoading      bool            `json:"isLoading"`
	Error          *string         `json:"error"`

	// Step is the checkout step reached after a flight was selected.
	Step BookingStep `json:"step"`

	// SearchSeq identifies the most recently started search; completions of
	// older searches are discarded.
	SearchSeq uint64 `json:"searchSeq"`
}

// InitialBookingState returns the empty state a session starts with.
func InitialBookingState() BookingState {
	return BookingState{
		SearchResults: []FlightResult{},
		Passengers:    []PassengerInfo{},
	}
}

// View derives the screen matching the state.
func (s BookingState) View() View {
	switch {
	case s.SearchParams == nil:
		return ViewSearch
	case s.SelectedFlight == nil:
		return ViewResults
	default:
		return ViewBooking
	}
}

// Clone returns a deep copy so callers cannot reach into shared slices.
func (s BookingState) Clone() BookingState {
	out := s
	if s.SearchParams != nil {
		params := *s.SearchParams
		if s.SearchParams.ReturnDate != nil {
			ret := *s.SearchParams.ReturnDate
			params.ReturnDate = &ret
		}
		out.SearchParams = &params
	}
	out.SearchResults = append([]FlightResult{}, s.SearchResults...)
	if s.SelectedFlight != nil {
		flight := *s.SelectedFlight
		out.SelectedFlight = &flight
	}
	out.Passengers = ClonePassengers(s.Passengers)
	if out.Passengers == nil {
		out.Passengers = []PassengerInfo{}
	}
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	return out
}
