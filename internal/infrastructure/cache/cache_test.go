package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

func TestCache_SetGet(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
	c := New[int](time.Minute, clock)

	c.Set("a", 1)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		wantHit bool
	}{
		{name: "before ttl", advance: 30 * time.Second, wantHit: true},
		{name: "exactly at ttl", advance: time.Minute, wantHit: true},
		{name: "after ttl", advance: time.Minute + time.Second, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
			c := New[string](time.Minute, clock)
			c.Set("k", "v")

			clock.Advance(tt.advance)
			_, ok := c.Get("k")
			assert.Equal(t, tt.wantHit, ok)
		})
	}
}

func TestCache_GetRefreshesExpiry(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
	c := New[string](time.Minute, clock)
	c.Set("k", "v")

	clock.Advance(50 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(50 * time.Second)
	_, ok = c.Get("k")
	assert.True(t, ok, "access should have extended the expiry")
}

func TestCache_DeleteAndPurge(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2026-01-01T10:00:00Z")
	c := New[int](time.Minute, clock)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 0, c.Len())
}
