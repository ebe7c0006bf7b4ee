package cache

import (
	"fmt"
	"sync"
	"time"
)

// Entry wraps a cached feed payload with its fetch time. A stored payload
// is always fully valid; partial results are never written.
type Entry struct {
	Payload   any
	FetchedAt time.Time
}

// TTLCache is a process-lifetime key-value store shared by the feed
// clients. An entry is valid for exactly TTL from insertion, measured
// against the wall clock at Get time. There is no size bound and no
// single-flight coordination: two concurrent misses for the same key may
// both hit the upstream feed.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// DefaultTTL matches the upstream feeds' refresh cadence.
const DefaultTTL = 1800 * time.Second

func New(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLCache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds the cache key for a feed at a coordinate. Keys use the raw
// float values: coordinates differing by floating-point noise are distinct
// keys and never share an entry.
func Key(feed string, lat, lon float64) string {
	return fmt.Sprintf("%s_%v_%v", feed, lat, lon)
}

// Get returns the payload for key, or absent when no entry exists or the
// entry's age has reached the TTL. Expired entries stay in place until
// overwritten or cleared.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.FetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.Payload, true
}

// Put stores payload under key, overwriting any previous entry.
func (c *TTLCache) Put(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Payload:   payload,
		FetchedAt: c.now(),
	}
}

// Clear removes all entries unconditionally and returns how many were
// removed.
func (c *TTLCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]Entry)
	return count
}

// Len returns the number of stored entries, expired or not.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
