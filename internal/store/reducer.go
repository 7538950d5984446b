package store

import "github.com/flight-search/flight-booking-system/internal/domain"

// Reduce returns the state that results from applying action to state.
// It has no side effects and never mutates its input. Unknown actions,
// including nil, leave the state unchanged.
func Reduce(state domain.BookingState, action Action) domain.BookingState {
	next := state.Clone()

	switch a := action.(type) {
	case SetSearchParams:
		params := a.Params
		if params.ReturnDate != nil {
			ret := *params.ReturnDate
			params.ReturnDate = &ret
		}
		next.SearchParams = &params

	case StartSearch:
		next.SearchSeq++
		next.IsLoading = true
		next.Error = nil

	case SetSearchResults:
		if isStale(state, a.Seq) {
			return next
		}
		next.SearchResults = append([]domain.FlightResult{}, a.Results...)
		next.IsLoading = false

	case SetSelectedFlight:
		flight := a.Flight
		next.SelectedFlight = &flight

	case SetPassengers:
		next.Passengers = domain.ClonePassengers(a.Passengers)
		if next.Passengers == nil {
			next.Passengers = []domain.PassengerInfo{}
		}

	case SetLoading:
		next.IsLoading = a.Loading

	case SetError:
		if isStale(state, a.Seq) {
			return next
		}
		if a.Message != nil {
			msg := *a.Message
			next.Error = &msg
		} else {
			next.Error = nil
		}
		next.IsLoading = false

	case SetStep:
		if a.Step.IsValid() {
			next.Step = a.Step
		}

	case ClearBooking:
		// The sequence advances past any search still in flight.
		cleared := domain.InitialBookingState()
		cleared.SearchSeq = state.SearchSeq + 1
		return cleared
	}

	return next
}

// isStale reports whether a completion tagged seq belongs to a search that has
// since been superseded.
func isStale(state domain.BookingState, seq uint64) bool {
	return seq != 0 && seq != state.SearchSeq
}
