package cache

import (
	"sync"
	"time"
)

// Cache is a concurrency safe in-memory key value store with per item expiration.
type Cache struct {
	data map[string]item
	mu   sync.RWMutex
}

type item struct {
	value      interface{}
	expiration int64
}

// NoExpiration marks an item that is never evicted by time.
const NoExpiration time.Duration = 0

// New creates a new cache.
func New() *Cache {
	return &Cache{
		data: make(map[string]item),
	}
}

// Set adds an item to the cache with a specified key, value and expiration time.
// A zero expiration never expires.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expirationTime int64
	if expiration > NoExpiration {
		expirationTime = time.Now().Add(expiration).UnixNano()
	}

	c.data[key] = item{
		value:      value,
		expiration: expirationTime,
	}
}

// Get retrieves the value associated with a key from the cache. Returns false if the key does not exist
// or has expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, exists := c.data[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if item.expiration > 0 && time.Now().UnixNano() > item.expiration {
		c.mu.Lock()
		// Re-check under the write lock since the item may have been refreshed.
		if current, ok := c.data[key]; ok && current.expiration == item.expiration {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return item.value, true
}

// Delete removes the key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Len returns the number of stored items including expired ones not yet evicted.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
