package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a string-keyed ristretto cache with a name for monitoring.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
	ttl       time.Duration
}

// Options tunes a cache. The zero value gives a 16MB cache with a one hour TTL.
type Options[T any] struct {
	MaxCost int64
	TTL     time.Duration
	// CountItems makes MaxCost a number of entries rather than bytes.
	CountItems bool
	// OnEvict runs when a value leaves the cache: eviction, expiry,
	// rejection on admission, or Del.
	OnEvict func(value T)
}

// New creates a new cache with the given cost function and cache type
func New[T any](costFunc func(T) int64, cacheType string) (*Cache[T], error) {
	return NewWithOptions(costFunc, cacheType, Options[T]{})
}

// NewWithOptions creates a cache with explicit limits and an eviction hook.
func NewWithOptions[T any](costFunc func(T) int64, cacheType string, opts Options[T]) (*Cache[T], error) {
	if opts.MaxCost <= 0 {
		opts.MaxCost = 1 << 24 // 16MB
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}

	cfg := &ristretto.Config[string, T]{
		NumCounters: 1e6,          // number of keys to track frequency of (1M)
		MaxCost:     opts.MaxCost, // maximum cost of cache
		BufferItems: 64,           // number of keys per Get buffer
		Metrics:     true,         // enable metrics
		Cost:        costFunc,

		IgnoreInternalCost: opts.CountItems,
	}
	if opts.OnEvict != nil {
		cfg.OnExit = opts.OnEvict
	}

	impl, err := ristretto.NewCache(cfg)
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
		ttl:       opts.TTL,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value in the cache with the cache's default TTL
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, c.ttl)
}

// SetWithTTL stores a value in the cache with a specific TTL
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Del removes a value from the cache
func (c *Cache[T]) Del(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait waits for the cache to finish processing
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns cache statistics for the health endpoint
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	memoryUsed := metrics.CostAdded() - metrics.CostEvicted()

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":     c.cacheType,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"cost_added":     metrics.CostAdded(),
		"cost_evicted":   metrics.CostEvicted(),
		"sets_dropped":   metrics.SetsDropped(),
		"sets_rejected":  metrics.SetsRejected(),
		"memory_used":    memoryUsed,
		"memory_used_kb": float64(memoryUsed) / 1024,
		"current_items":  c.GetItemCount(),
	}
}
