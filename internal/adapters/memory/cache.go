package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rafaelleal24/smartretail/internal/core/port"
)

type cacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

func (i cacheItem[T]) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// Cache is the in-process CachePort used when Redis is disabled. Values are copied
// on the way in and out.
type Cache[T any] struct {
	mu    sync.Mutex
	items map[string]cacheItem[T]
	now   func() time.Time
}

func NewCache[T any]() port.CachePort[T] {
	return &Cache[T]{items: make(map[string]cacheItem[T]), now: time.Now}
}

func (c *Cache[T]) Get(_ context.Context, key string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok || item.expired(c.now()) {
		delete(c.items, key)
		return nil, nil
	}
	value := item.value
	return &value, nil
}

func (c *Cache[T]) Set(_ context.Context, key string, value *T, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = c.newItem(value, ttl)
	return nil
}

func (c *Cache[T]) SetNX(_ context.Context, key string, value *T, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[key]; ok && !item.expired(c.now()) {
		return false, nil
	}
	c.items[key] = c.newItem(value, ttl)
	return true, nil
}

func (c *Cache[T]) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

func (c *Cache[T]) newItem(value *T, ttl time.Duration) cacheItem[T] {
	item := cacheItem[T]{value: *value}
	if ttl > 0 {
		item.expiresAt = c.now().Add(ttl)
	}
	return item
}
