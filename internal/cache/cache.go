// Package cache is the in-process query cache. Collections are keyed by
// entity name (plus provider id for per-provider schedules); mutations
// are the only writers, via Invalidate.
package cache

import (
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value    any
	storedAt time.Time
}

type Cache struct {
	lru *lru.Cache[string, entry]
	ttl time.Duration
	mu  sync.RWMutex
	now func() time.Time
}

func New(size int, ttl time.Duration) (*Cache, error) {
	if size <= 0 {
		size = 64
	}

	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		lru: c,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}

	return e.value, true
}

func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, entry{value: value, storedAt: c.now()})
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(key)
}

// InvalidatePrefix drops every key under a prefix. Used by the global
// schedule wipe, which touches every provider's collection at once.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
