package usecase_recommend

import (
	"fmt"
	"strings"
	"sync"
)

// Cache is the content-addressed memoization table for every derived
// computation: keys encode the dataset fingerprint plus the full parameter
// tuple, so a changed input lands on a new key instead of flushing anything.
// Entries are immutable once stored and live for the process lifetime; the
// session-scoped dataset keeps the table bounded in practice.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *Cache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key renders a cache key from the computation name and its inputs. String
// parts are quoted so an id containing the separator cannot collide with a
// differently shaped tuple.
func Key(parts ...interface{}) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		if s, ok := part.(string); ok {
			fmt.Fprintf(&b, "%q", s)
			continue
		}
		fmt.Fprintf(&b, "%v", part)
	}
	return b.String()
}

// Memoize returns the cached artifact for key, computing and storing it on
// first use. Failed computations are never stored, so a query-time error does
// not poison the cache.
func Memoize[T any](c *Cache, key string, compute func() (T, error)) (T, error) {
	if value, ok := c.Get(key); ok {
		return value.(T), nil
	}
	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Put(key, value)
	return value, nil
}
