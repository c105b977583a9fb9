package store

import (
	"sync"
	"time"
)

// Cache is a concurrency-safe, freshness-bounded in-memory map. An entry older
// than maxAge is treated as absent. There is no size bound beyond natural key
// cardinality; keys are human search terms within one session.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	maxAge  time.Duration

	now func() time.Time
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// New creates a Cache whose entries stay fresh for maxAge.
func New[V any](maxAge time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Get returns the fresh value for key, or ok=false on a miss or a stale entry.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.maxAge {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, overwriting any prior entry.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Len returns the number of entries, fresh or stale.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
