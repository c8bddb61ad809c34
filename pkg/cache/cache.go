package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a TTL keyed store for values of one type
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	// GetOrLoad returns the cached value or runs load once per key, even under
	// concurrent callers, and caches a successful result
	GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error)
	Delete(key string)
	Clear()
	Size() int
	Stop()
}

type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

// InMemoryCache is a thread-safe in-memory cache. Loads run outside the lock so a
// slow upstream call never blocks readers of other keys.
type InMemoryCache[V any] struct {
	items    map[string]cacheItem[V]
	mu       sync.RWMutex
	group    singleflight.Group
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewInMemoryCache creates a cache that evicts expired items every cleanupInterval
func NewInMemoryCache[V any](cleanupInterval time.Duration) *InMemoryCache[V] {
	c := &InMemoryCache[V]{
		items: make(map[string]cacheItem[V]),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	go c.startCleanup(cleanupInterval)

	return c
}

func (c *InMemoryCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || c.now().After(item.expiration) {
		var zero V
		return zero, false
	}
	return item.value, true
}

func (c *InMemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheItem[V]{value: value, expiration: c.now().Add(ttl)}
}

func (c *InMemoryCache[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (c *InMemoryCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *InMemoryCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]cacheItem[V])
}

// Size includes expired items not yet evicted
func (c *InMemoryCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (c *InMemoryCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *InMemoryCache[V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *InMemoryCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, item := range c.items {
		if now.After(item.expiration) {
			delete(c.items, key)
		}
	}
}
