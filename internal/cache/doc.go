// Package cache provides the generic lookup-or-insert cache backing the
// sdlkit texture cache.
//
// Cache[K, V] maps keys to values with at most one value per distinct key.
// Values are created lazily through GetOrCreate and never evicted; Clear
// releases everything at once when the owning resource goes away.
//
//	c := cache.New[string, int]()
//	v, err := c.GetOrCreate("key", func() (int, error) { return 42, nil })
//
// The map is mutex-guarded so misuse cannot corrupt it, but the intended
// access pattern is single-threaded. Cache must not be copied after
// creation (it contains a mutex).
package cache
