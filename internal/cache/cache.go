package cache

import "sync"

// Cache is a generic lookup-or-insert cache with no eviction: entries stay
// until Clear. Growth is bounded only by the number of distinct keys ever
// inserted.
//
// Cache guards its map with a mutex so misuse cannot corrupt it, but the
// intended access pattern is single-threaded.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V

	hits   uint64
	misses uint64
}

// New creates a new empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return value, true
}

// Has reports whether key is present. No side effects.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// GetOrCreate returns the cached value for key, or calls create to make
// one. The insertion is all-or-nothing: if create fails, nothing is
// inserted, the error is returned, and a later call retries.
//
// create is called under the cache lock, so a key is created at most once
// even under concurrent access.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.entries[key]; ok {
		c.hits++
		return value, nil
	}
	c.misses++

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}

	c.entries[key] = value
	return value, nil
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Keys returns the cached keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}

// Clear removes all entries, calling release for each value first.
// release may be nil.
func (c *Cache[K, V]) Clear(release func(V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if release != nil {
		for _, value := range c.entries {
			release(value)
		}
	}
	c.entries = make(map[K]V)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:    len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Stats holds a snapshot of cache counters.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}
