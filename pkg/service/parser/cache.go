package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// cacheEntry is one cached render with its creation time.
type cacheEntry struct {
	value     string
	createdAt time.Time
}

// LRUCache is a thread-safe LRU cache for rendered content.
type LRUCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	cache    map[string]*cacheEntry
	order    []string // access order, oldest first
}

// NewLRUCache creates a new LRU cache.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		cache:    make(map[string]*cacheEntry),
		order:    make([]string, 0, capacity),
	}
}

// computeCacheKey hashes the content with SHA256 so the key length stays
// bounded regardless of the article size.
func computeCacheKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get returns the cached value when present and not expired.
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache[key]
	if !exists {
		return "", false
	}

	if c.ttl > 0 && time.Since(entry.createdAt) > c.ttl {
		delete(c.cache, key)
		c.removeFromOrder(key)
		return "", false
	}

	c.moveToEnd(key)

	return entry.value, true
}

// Set stores a value, evicting the least recently used entry at capacity.
func (c *LRUCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache[key]; exists {
		c.cache[key] = &cacheEntry{
			value:     value,
			createdAt: time.Now(),
		}
		c.moveToEnd(key)
		return
	}

	if len(c.cache) >= c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.cache, oldest)
	}

	c.cache[key] = &cacheEntry{
		value:     value,
		createdAt: time.Now(),
	}
	c.order = append(c.order, key)
}

// Clear empties the cache.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*cacheEntry)
	c.order = make([]string, 0, c.capacity)
}

// Size returns the current number of entries.
func (c *LRUCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// moveToEnd moves key to the end of the order slice. Caller holds the lock.
func (c *LRUCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}

// removeFromOrder drops key from the order slice. Caller holds the lock.
func (c *LRUCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
