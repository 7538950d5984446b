// Package store holds the booking state of a session and the closed set of
// actions that transition it.
package store

import "github.com/flight-search/flight-booking-system/internal/domain"

// Action is a state transition request. The set of actions is closed: only
// the types declared in this package implement it.
type Action interface {
	isAction()
}

// SetSearchParams replaces the search parameters.
type SetSearchParams struct {
	Params domain.SearchParams
}

// StartSearch marks a new search as in flight. It bumps the search sequence,
// raises the loading flag and clears any previous error.
type StartSearch struct{}

// SetSearchResults stores the results of a search and clears the loading flag.
// Seq is the sequence returned for the search by StartSearch; results of a
// superseded search are dropped. Seq 0 is always applied.
type SetSearchResults struct {
	Results []domain.FlightResult
	Seq     uint64
}

// SetSelectedFlight records the offer the user picked.
type SetSelectedFlight struct {
	Flight domain.FlightResult
}

// SetPassengers replaces the submitted passenger roster.
type SetPassengers struct {
	Passengers []domain.PassengerInfo
}

// SetLoading sets the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError sets or clears (nil Message) the error and clears the loading flag.
// Seq follows the same staleness rule as SetSearchResults.
type SetError struct {
	Message *string
	Seq     uint64
}

// SetStep moves the checkout to a step.
type SetStep struct {
	Step domain.BookingStep
}

// ClearBooking resets the state to its initial form. The search sequence
// is advanced, so completions of searches started earlier are dropped.
type ClearBooking struct{}

func (SetSearchParams) isAction()   {}
func (StartSearch) isAction()       {}
func (SetSearchResults) isAction()  {}
func (SetSelectedFlight) isAction() {}
func (SetPassengers) isAction()     {}
func (SetLoading) isAction()        {}
func (SetError) isAction()          {}
func (SetStep) isAction()           {}
func (ClearBooking) isAction()      {}

// ErrorMessage is a convenience for building SetError payloads.
func ErrorMessage(msg string) *string {
	return &msg
}
