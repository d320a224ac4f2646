package cache

import (
	"sync"
	"time"

	"github.com/epeers/rsiv/internal/models"
	"github.com/google/uuid"
)

// MemoryCache keeps completed analyses in memory so reports and exports can be
// requested after the form submission. Nothing survives a restart.
type MemoryCache struct {
	analyses map[string]analysisEntry
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
}

type analysisEntry struct {
	analysis  *models.AnalysisResponse
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache. ttl <= 0 keeps entries until Clear.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		analyses: make(map[string]analysisEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put stores the analysis under a fresh id, sets analysis.ID and returns it
func (c *MemoryCache) Put(analysis *models.AnalysisResponse) string {
	id := uuid.NewString()
	analysis.ID = id

	c.mu.Lock()
	defer c.mu.Unlock()

	c.analyses[id] = analysisEntry{
		analysis:  analysis,
		fetchedAt: c.now(),
	}
	return id
}

// Get retrieves a cached analysis if still fresh
func (c *MemoryCache) Get(id string) (*models.AnalysisResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.analyses[id]
	if !exists {
		return nil, false
	}
	if c.expired(entry) {
		return nil, false
	}
	return entry.analysis, true
}

// Evict removes an analysis from the cache. It reports false when id was
// unknown or had already expired, matching what Get would have returned.
func (c *MemoryCache) Evict(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.analyses[id]
	if !exists {
		return false
	}
	delete(c.analyses, id)
	return !c.expired(entry)
}

// Sweep drops expired entries and returns how many were removed
func (c *MemoryCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, entry := range c.analyses {
		if c.expired(entry) {
			delete(c.analyses, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries held, expired or not
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.analyses)
}

func (c *MemoryCache) expired(entry analysisEntry) bool {
	return c.ttl > 0 && c.now().Sub(entry.fetchedAt) > c.ttl
}
