// Package cache provides the bounded response cache.
//
// Entries are keyed by raw message text and expire after a TTL.
// Eviction is insertion-order FIFO: when the cache grows past its
// capacity the oldest-inserted key is dropped, regardless of how
// recently it was read. A re-written key takes a fresh insertion
// position at the back of the order.
package cache

import (
	"sync"
	"time"
)

// Cache is a bounded key→value store with TTL expiry.
// Safe for concurrent use, but provides no per-key in-flight
// de-duplication: two rapid identical misses both compute.
type Cache struct {
	mu         sync.Mutex
	enabled    bool
	ttl        time.Duration
	maxEntries int
	entries    map[string]entry
	order      []string
	now        func() time.Time
}

type entry struct {
	value     string
	createdAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache. A disabled cache accepts all calls and stores
// nothing.
func New(enabled bool, ttl time.Duration, maxEntries int, opts ...Option) *Cache {
	c := &Cache{
		enabled:    enabled,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key. ok is false if the cache is
// disabled, the key is missing, or the entry has expired. An expired
// entry is deleted as a side effect of the read.
func (c *Cache) Get(key string) (string, bool) {
	if !c.enabled {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[key]
	if !found {
		return "", false
	}

	if c.now().Sub(e.createdAt) > c.ttl {
		c.remove(key)
		return "", false
	}

	return e.value, true
}

// Put inserts or overwrites the value for key with the current
// timestamp. No-op when the cache is disabled. When the entry count
// exceeds the capacity, the first key in insertion order is evicted.
func (c *Cache) Put(key, value string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.entries[key]; found {
		c.remove(key)
	}

	c.entries[key] = entry{value: value, createdAt: c.now()}
	c.order = append(c.order, key)

	if len(c.entries) > c.maxEntries {
		c.remove(c.order[0])
	}
}

// Clear drops all entries unconditionally.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.order = c.order[:0]
}

// Len returns the number of live-or-expired entries currently held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes key from both the map and the insertion order.
// Caller holds the lock.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
