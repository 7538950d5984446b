package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/cache"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Registry maps session ids to stores. Idle sessions expire, which resets the
// booking exactly as a page reload would.
type Registry struct {
	sessions *cache.Cache[*Store]
}

// NewRegistry creates a registry whose sessions expire after ttl of inactivity.
// A non-positive ttl uses DefaultSessionTTL; a nil clock uses system time.
func NewRegistry(ttl time.Duration, clock timeutil.Clock) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{sessions: cache.New[*Store](ttl, clock)}
}

// Create starts a new session and returns its id and store.
func (r *Registry) Create() (string, *Store) {
	id := uuid.New().String()
	s := New()
	r.sessions.Set(id, s)
	return id, s
}

// Get returns the store of a live session.
func (r *Registry) Get(id string) (*Store, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session.
func (r *Registry) Delete(id string) error {
	if !r.sessions.Delete(id) {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Purge drops expired sessions and returns how many were removed.
func (r *Registry) Purge() int {
	return r.sessions.Purge()
}
