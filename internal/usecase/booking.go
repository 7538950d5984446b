package usecase

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-booking-system/internal/store"
)

// BookingUseCase drives one session through search, selection, passenger
// details and the fare summary. Every method works on the store of the
// session it is given.
type BookingUseCase interface {
	// SubmitSearch validates the form and stores the resulting parameters.
	// A new search starts a fresh booking: an earlier selection is dropped
	// and the draft roster is rebuilt for the new passenger counts.
	SubmitSearch(s *store.Store, form domain.SearchForm) (domain.SearchParams, error)

	// RunSearch fetches offers for the stored parameters and records either
	// the results or the error.
	RunSearch(ctx context.Context, s *store.Store) (domain.BookingState, error)

	// Results returns the filtered and sorted view of the stored results.
	Results(s *store.Store, sortOpts domain.SortOptions, filter *domain.FilterOptions) ([]domain.FlightResult, error)

	// SelectFlight records the offer with the given id as the selection.
	SelectFlight(s *store.Store, flightID string) (domain.BookingState, error)

	// Roster returns the draft passenger roster.
	Roster(s *store.Store) ([]domain.PassengerInfo, error)

	// UpdatePassenger edits one record of the draft roster.
	UpdatePassenger(s *store.Store, passengerID string, update domain.PassengerUpdate) (domain.PassengerInfo, error)

	// SubmitPassengers validates the draft roster and commits it.
	SubmitPassengers(s *store.Store) (domain.BookingState, error)

	// Summary returns the price panel of the current booking.
	Summary(s *store.Store) (domain.BookingSummary, error)

	// Clear resets the booking.
	Clear(s *store.Store) (domain.BookingState, error)
}

type bookingUseCase struct {
	search FlightSearchUseCase
	clock  timeutil.Clock
}

// NewBookingUseCase creates a BookingUseCase. A nil clock uses system time.
func NewBookingUseCase(search FlightSearchUseCase, clock timeutil.Clock) BookingUseCase {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &bookingUseCase{search: search, clock: clock}
}

func (uc *bookingUseCase) SubmitSearch(s *store.Store, form domain.SearchForm) (domain.SearchParams, error) {
	state, err := s.State()
	if err != nil {
		return domain.SearchParams{}, err
	}

	params, err := form.Build(uc.clock.Now())
	if err != nil {
		return domain.SearchParams{}, err
	}

	if state.SelectedFlight != nil {
		if _, err := s.Dispatch(store.ClearBooking{}); err != nil {
			return domain.SearchParams{}, err
		}
	}
	if _, err := s.Dispatch(store.SetSearchParams{Params: params}); err != nil {
		return domain.SearchParams{}, err
	}
	if _, err := s.Dispatch(store.SetStep{Step: domain.StepDetails}); err != nil {
		return domain.SearchParams{}, err
	}
	if err := s.SetDraft(BuildRoster(params.Passengers)); err != nil {
		return domain.SearchParams{}, err
	}

	return params, nil
}

func (uc *bookingUseCase) RunSearch(ctx context.Context, s *store.Store) (domain.BookingState, error) {
	state, err := s.State()
	if err != nil {
		return domain.BookingState{}, err
	}
	if state.SearchParams == nil {
		return state, fmt.Errorf("%w: no search parameters", domain.ErrMissingBookingContext)
	}

	started, err := s.Dispatch(store.StartSearch{})
	if err != nil {
		return domain.BookingState{}, err
	}
	seq := started.SearchSeq

	results, searchErr := uc.search.Search(ctx, *started.SearchParams)
	if searchErr != nil {
		state, err = s.Dispatch(store.SetError{Message: store.ErrorMessage(searchErr.Error()), Seq: seq})
		if err != nil {
			return domain.BookingState{}, err
		}
		return state, searchErr
	}

	return s.Dispatch(store.SetSearchResults{Results: results, Seq: seq})
}

func (uc *bookingUseCase) Results(s *store.Store, sortOpts domain.SortOptions, filter *domain.FilterOptions) ([]domain.FlightResult, error) {
	state, err := s.State()
	if err != nil {
		return nil, err
	}
	if state.SearchParams == nil {
		return nil, fmt.Errorf("%w: no search parameters", domain.ErrMissingBookingContext)
	}
	return SortResults(ApplyFilters(state.SearchResults, filter), sortOpts), nil
}

func (uc *bookingUseCase) SelectFlight(s *store.Store, flightID string) (domain.BookingState, error) {
	state, err := s.State()
	if err != nil {
		return domain.BookingState{}, err
	}
	if state.SearchParams == nil {
		return state, fmt.Errorf("%w: no search parameters", domain.ErrMissingBookingContext)
	}

	flight, ok := domain.FindFlight(state.SearchResults, flightID)
	if !ok {
		return state, fmt.Errorf("%w: %q", domain.ErrFlightNotFound, flightID)
	}

	if _, err := s.Dispatch(store.SetSelectedFlight{Flight: flight}); err != nil {
		return domain.BookingState{}, err
	}

	counts := state.SearchParams.Passengers
	err = s.UpdateDraft(func(roster []domain.PassengerInfo) ([]domain.PassengerInfo, error) {
		if len(roster) == 0 {
			return BuildRoster(counts), nil
		}
		return roster, nil
	})
	if err != nil {
		return domain.BookingState{}, err
	}

	return s.Dispatch(store.SetStep{Step: domain.StepDetails})
}

func (uc *bookingUseCase) Roster(s *store.Store) ([]domain.PassengerInfo, error) {
	state, err := bookingState(s)
	if err != nil {
		return nil, err
	}

	counts := state.SearchParams.Passengers
	err = s.UpdateDraft(func(roster []domain.PassengerInfo) ([]domain.PassengerInfo, error) {
		if len(roster) == 0 {
			return BuildRoster(counts), nil
		}
		return roster, nil
	})
	if err != nil {
		return nil, err
	}
	return s.Draft()
}

func (uc *bookingUseCase) UpdatePassenger(s *store.Store, passengerID string, update domain.PassengerUpdate) (domain.PassengerInfo, error) {
	if _, err := bookingState(s); err != nil {
		return domain.PassengerInfo{}, err
	}

	var updated domain.PassengerInfo
	err := s.UpdateDraft(func(roster []domain.PassengerInfo) ([]domain.PassengerInfo, error) {
		next, err := UpdatePassenger(roster, passengerID, update)
		if err != nil {
			return nil, err
		}
		for _, p := range next {
			if p.ID == passengerID {
				updated = p.Clone()
			}
		}
		return next, nil
	})
	if err != nil {
		return domain.PassengerInfo{}, err
	}
	return updated, nil
}

func (uc *bookingUseCase) SubmitPassengers(s *store.Store) (domain.BookingState, error) {
	state, err := bookingState(s)
	if err != nil {
		return state, err
	}

	roster, err := s.Draft()
	if err != nil {
		return domain.BookingState{}, err
	}
	if msgs := ValidateRoster(roster); len(msgs) > 0 {
		return state, &domain.RosterValidationError{Messages: msgs}
	}

	if _, err := s.Dispatch(store.SetPassengers{Passengers: roster}); err != nil {
		return domain.BookingState{}, err
	}
	return s.Dispatch(store.SetStep{Step: domain.StepReview})
}

func (uc *bookingUseCase) Summary(s *store.Store) (domain.BookingSummary, error) {
	state, err := bookingState(s)
	if err != nil {
		return domain.BookingSummary{}, err
	}

	flight := *state.SelectedFlight
	params := *state.SearchParams

	fare := ComputeFare(flight.Price, params.Passengers)
	fare.Currency = flight.Currency

	passengers := state.Passengers
	if len(passengers) == 0 {
		if passengers, err = s.Draft(); err != nil {
			return domain.BookingSummary{}, err
		}
	}

	return domain.BookingSummary{
		Flight:       flight,
		SearchParams: params,
		Fare:         fare,
		Passengers:   passengers,
		Step:         state.Step.String(),
	}, nil
}

func (uc *bookingUseCase) Clear(s *store.Store) (domain.BookingState, error) {
	return s.Dispatch(store.ClearBooking{})
}

// bookingState returns the state when both search parameters and a selected
// flight are present, ErrMissingBookingContext otherwise.
func bookingState(s *store.Store) (domain.BookingState, error) {
	state, err := s.State()
	if err != nil {
		return domain.BookingState{}, err
	}
	if state.SearchParams == nil || state.SelectedFlight == nil {
		return state, fmt.Errorf("%w: search parameters and a selected flight are required", domain.ErrMissingBookingContext)
	}
	return state, nil
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
