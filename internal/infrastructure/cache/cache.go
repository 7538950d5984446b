// Package cache provides a small generic in-memory cache with sliding expiry.
package cache

import (
	"sync"
	"time"

	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache maps string keys to values that expire after a period of inactivity.
// Every successful Get pushes the expiry forward by the cache TTL.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	clock   timeutil.Clock
}

// New creates a cache whose entries live for ttl after their last access.
// A nil clock uses the system time.
func New[T any](ttl time.Duration, clock timeutil.Clock) *Cache[T] {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the value for key and refreshes its expiry.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	now := c.clock.Now()
	if now.After(e.expiry) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	e.expiry = now.Add(c.ttl)
	c.entries[key] = e
	return e.value, true
}

// Set stores value under key.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, expiry: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete removes key. It reports whether the key was present and live.
func (c *Cache[T]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	return !c.clock.Now().After(e.expiry)
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[T]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
