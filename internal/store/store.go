package store

import (
	"context"
	"sync"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// Store owns the booking state of one session. All reads and writes go
// through it; it is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state domain.BookingState

	// draft holds the roster being edited before it is submitted.
	draft []domain.PassengerInfo
}

// New creates a store holding the initial state.
func New() *Store {
	return &Store{state: domain.InitialBookingState()}
}

// State returns a snapshot of the current state.
func (s *Store) State() (domain.BookingState, error) {
	if s == nil {
		return domain.BookingState{}, domain.ErrStoreNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

// Dispatch applies action and returns the resulting state.
// ClearBooking also discards the draft roster.
func (s *Store) Dispatch(action Action) (domain.BookingState, error) {
	if s == nil {
		return domain.BookingState{}, domain.ErrStoreNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	if _, ok := action.(ClearBooking); ok {
		s.draft = nil
	}
	return s.state.Clone(), nil
}

// Draft returns a copy of the roster being edited.
func (s *Store) Draft() ([]domain.PassengerInfo, error) {
	if s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ClonePassengers(s.draft), nil
}

// SetDraft replaces the roster being edited.
func (s *Store) SetDraft(roster []domain.PassengerInfo) error {
	if s == nil {
		return domain.ErrStoreNotInitialized
	}
	s.mu.Lock()
	s.draft = domain.ClonePassengers(roster)
	s.mu.Unlock()
	return nil
}

// UpdateDraft applies fn to the draft roster under the store lock and keeps
// the returned roster unless fn fails.
func (s *Store) UpdateDraft(fn func([]domain.PassengerInfo) ([]domain.PassengerInfo, error)) error {
	if s == nil {
		return domain.ErrStoreNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(domain.ClonePassengers(s.draft))
	if err != nil {
		return err
	}
	s.draft = domain.ClonePassengers(next)
	return nil
}

type contextKey struct{}

// NewContext returns a copy of ctx bound to s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store bound to ctx, or ErrStoreNotInitialized when
// ctx is outside a session scope.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	return s, nil
}
