package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

func TestStore_DispatchAndState(t *testing.T) {
	s := New()

	got, err := s.Dispatch(SetSearchParams{Params: sampleParams()})
	require.NoError(t, err)
	require.NotNil(t, got.SearchParams)

	state, err := s.State()
	require.NoError(t, err)
	assert.Equal(t, got, state)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := New()
	_, err := s.Dispatch(SetSearchResults{Results: sampleResults()})
	require.NoError(t, err)

	snap, err := s.State()
	require.NoError(t, err)
	snap.SearchResults[0].Price = 1

	again, err := s.State()
	require.NoError(t, err)
	assert.Equal(t, float64(110), again.SearchResults[0].Price)
}

func TestStore_NilFailsFast(t *testing.T) {
	var s *Store

	_, err := s.State()
	assert.ErrorIs(t, err, domain.ErrStoreNotInitialized)

	_, err = s.Dispatch(ClearBooking{})
	assert.ErrorIs(t, err, domain.ErrStoreNotInitialized)

	_, err = s.Draft()
	assert.ErrorIs(t, err, domain.ErrStoreNotInitialized)

	assert.ErrorIs(t, s.SetDraft(nil), domain.ErrStoreNotInitialized)
}

func TestStore_ClearDropsDraft(t *testing.T) {
	s := New()
	require.NoError(t, s.SetDraft([]domain.PassengerInfo{{ID: "adult-0"}}))

	_, err := s.Dispatch(ClearBooking{})
	require.NoError(t, err)

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Empty(t, draft)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Dispatch(StartSearch{})
		}()
	}
	wg.Wait()

	state, err := s.State()
	require.NoError(t, err)
	assert.Equal(t, uint64(50), state.SearchSeq)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreNotInitialized)

	s := New()
	got, err := FromContext(NewContext(context.Background(), s))
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = FromContext(NewContext(context.Background(), nil))
	assert.ErrorIs(t, err, domain.ErrStoreNotInitialized)
}

func TestRegistry_Lifecycle(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
	r := NewRegistry(10*time.Minute, clock)

	id, s := r.Create()
	assert.Len(t, id, 36)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Get("unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, r.Delete(id))
	assert.ErrorIs(t, r.Delete(id), domain.ErrSessionNotFound)
}

func TestRegistry_Expiry(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
	r := NewRegistry(10*time.Minute, clock)

	id, _ := r.Create()
	clock.Advance(11 * time.Minute)

	_, err := r.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_UpdateDraft(t *testing.T) {
	s := New()
	require.NoError(t, s.SetDraft([]domain.PassengerInfo{{ID: "adult-0", Type: domain.PassengerAdult}}))

	err := s.UpdateDraft(func(r []domain.PassengerInfo) ([]domain.PassengerInfo, error) {
		r[0].FirstName = "Ada"
		return r, nil
	})
	require.NoError(t, err)

	err = s.UpdateDraft(func(r []domain.PassengerInfo) ([]domain.PassengerInfo, error) {
		r[0].FirstName = "ignored"
		return nil, domain.ErrPassengerNotFound
	})
	assert.ErrorIs(t, err, domain.ErrPassengerNotFound)

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, "Ada", draft[0].FirstName)
}
