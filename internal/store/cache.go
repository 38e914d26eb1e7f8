package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FutureQuant/Random-walk/internal/analysis"
	"github.com/FutureQuant/Random-walk/internal/simulation"
)

// Entry is one cached simulation.
type Entry struct {
	ID        string
	Result    *simulation.Result
	Summary   analysis.RunSummary
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ResultCache keeps finished simulations in memory so their series can be
// downloaded after the run request returns.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores res under a fresh UUID and returns the entry.
func (c *ResultCache) Put(res *simulation.Result, summary analysis.RunSummary) *Entry {
	now := c.now()
	e := &Entry{
		ID:        uuid.NewString(),
		Result:    res,
		Summary:   summary,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[e.ID] = e
	return e
}

// Get retrieves an entry if present and not expired.
func (c *ResultCache) Get(id string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[id]
	if !ok || c.now().After(e.ExpiresAt) {
		return nil, false
	}
	return e, true
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Evict removes expired entries and reports how many were dropped.
func (c *ResultCache) Evict() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, e := range c.store {
		if now.After(e.ExpiresAt) {
			delete(c.store, id)
			n++
		}
	}
	return n
}

// RunCleanup evicts expired entries every interval until ctx is done.
func (c *ResultCache) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Evict()
		}
	}
}
