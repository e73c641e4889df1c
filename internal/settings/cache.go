package settings

import (
	"context"
	"sync"
	"time"
)

// Cache memoizes global limits for a fixed TTL.
//
// The clock is injected and invalidation is explicit, so tests control time
// and the admin surface can force a refresh after editing limits.
type Cache struct {
	inner PolicyStore
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	cached  *GlobalLimits
	fetched time.Time
}

// wraps a policy store with TTL memoization
func NewCache(inner PolicyStore, ttl time.Duration) *Cache {
	return NewCacheWithClock(inner, ttl, time.Now)
}

// wraps a policy store with an explicit clock (for tests)
func NewCacheWithClock(inner PolicyStore, ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}

	return &Cache{inner: inner, ttl: ttl, now: now}
}

// returns cached limits, refreshing from the inner store when stale
func (c *Cache) GlobalLimits(ctx context.Context) (*GlobalLimits, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.now().Sub(c.fetched) < c.ttl {
		return c.cached, nil
	}

	limits, err := c.inner.GlobalLimits(ctx)
	if err != nil {
		// serve stale limits rather than failing the request path
		if c.cached != nil {
			return c.cached, nil
		}
		return nil, err
	}

	c.cached = limits
	c.fetched = c.now()
	return limits, nil
}

// drops the cached value so the next read hits the inner store
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}
