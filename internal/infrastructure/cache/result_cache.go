package cache

import (
	"context"
	"sync"
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
)

// resultEntry represents a cached value with its insertion time
type resultEntry struct {
	value      string
	insertedAt time.Time
}

// InMemoryResultCache implements ResultCache using an in-memory map.
// Suitable for single-instance deployments and testing.
type InMemoryResultCache struct {
	mu        sync.RWMutex
	entries   map[string]resultEntry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	now       func() time.Time
}

// NewInMemoryResultCache creates a new in-memory result cache with a TTL in
// whole seconds. It starts a background goroutine to reclaim expired entries.
func NewInMemoryResultCache(ttlSeconds int) *InMemoryResultCache {
	cache := &InMemoryResultCache{
		entries:  make(map[string]resultEntry),
		ttl:      time.Duration(ttlSeconds) * time.Second,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}

	cache.wg.Add(1)
	go cache.cleanupLoop()

	return cache
}

// Get returns the cached value, or nil when absent or expired. Expired
// entries are evicted on read.
func (c *InMemoryResultCache) Get(ctx context.Context, key string) (*string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[key]
	if !exists {
		return nil, nil
	}
	if c.expired(e) {
		delete(c.entries, key)
		return nil, nil
	}

	value := e.value
	return &value, nil
}

// Set stores a value under the key; fails when the key is live
func (c *InMemoryResultCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.entries[key]; exists && !c.expired(e) {
		return directory.NewCacheKeyExistsError(key)
	}

	c.entries[key] = resultEntry{
		value:      value,
		insertedAt: c.now(),
	}
	return nil
}

// Delete removes a key; idempotent
func (c *InMemoryResultCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Destroy clears all entries and stops the cleanup goroutine.
// Safe to call multiple times.
func (c *InMemoryResultCache) Destroy(ctx context.Context) error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]resultEntry)
	return nil
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// expired reports whether an entry's TTL has elapsed, measured in whole
// seconds from insertion
func (c *InMemoryResultCache) expired(e resultEntry) bool {
	return !c.now().Before(e.insertedAt.Add(c.ttl))
}

// cleanupLoop periodically reclaims expired entries
func (c *InMemoryResultCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries from the cache
func (c *InMemoryResultCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
		}
	}
}

// Ensure InMemoryResultCache implements directory.ResultCache
var _ directory.ResultCache = (*InMemoryResultCache)(nil)
