package data

import (
	"context"
	"sync"
	"time"

	"baas-lcos/internal/lcos"
)

// CacheEntry is one stored evaluation.
type CacheEntry struct {
	Result    *lcos.Result
	ExpiresAt time.Time
}

// DefaultMaxEntries bounds a ResultCache built with maxEntries <= 0.
const DefaultMaxEntries = 10000

// ResultCache keeps evaluation results in memory so the degradation table can
// be fetched after the evaluate call returns. Entries expire after ttl; once
// maxEntries are held, the oldest entry is evicted on insert.
type ResultCache struct {
	mu         sync.RWMutex
	store      map[string]*CacheEntry
	order      []string // insertion order, oldest first
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewResultCache(ttl time.Duration, maxEntries int) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &ResultCache{
		store:      make(map[string]*CacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get retrieves a result if present and not expired.
func (c *ResultCache) Get(id string) (*lcos.Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[id]
	if !ok || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Set stores a result under id.
func (c *ResultCache) Set(id string, res *lcos.Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store[id]; ok {
		c.removeFromOrder(id)
	}
	for len(c.order) >= c.maxEntries {
		delete(c.store, c.order[0])
		c.order = c.order[1:]
	}
	c.order = append(c.order, id)
	c.store[id] = &CacheEntry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Prune removes expired entries.
func (c *ResultCache) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	kept := c.order[:0]
	for _, id := range c.order {
		if now.After(c.store[id].ExpiresAt) {
			delete(c.store, id)
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
}

func (c *ResultCache) removeFromOrder(id string) {
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// RunCleanup prunes expired entries every interval until ctx is done.
func (c *ResultCache) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Prune()
		}
	}
}
