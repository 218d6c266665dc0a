package dashboard

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// DefaultChartCacheEntries bounds the markup kept in memory. The panel renders
// a fixed set of charts per tab and screen, so this only trips when the
// section manifest is swapped at runtime.
const DefaultChartCacheEntries = 256

// RenderCache memoizes rendered chart HTML keyed by panel and configuration.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// CacheStats summarizes cache usage since the last Purge.
type CacheStats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// ChartCache keeps rendered charts for a fixed TTL. When full, the entry
// closest to expiry is evicted.
type ChartCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]chartEntry
	hits    int
	misses  int
}

type chartEntry struct {
	markup  string
	expires time.Time
}

// NewChartCache builds a cache. A non-positive ttl disables storage while
// still counting misses.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{
		ttl:        ttl,
		maxEntries: DefaultChartCacheEntries,
		now:        time.Now,
		entries:    make(map[string]chartEntry),
	}
}

// GetOrRender serves key from memory or calls render. Failed renders are not
// stored.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if c == nil {
		return render()
	}
	if markup, ok := c.lookup(key); ok {
		return markup, nil
	}
	markup, err := render()
	if err != nil {
		return "", err
	}
	c.store(key, markup)
	return markup, nil
}

// Len counts unexpired entries.
func (c *ChartCache) Len() int {
	return c.Stats().Entries
}

// Stats reports live entries and the hit ratio inputs.
func (c *ChartCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	live := 0
	for _, entry := range c.entries {
		if entry.expires.After(now) {
			live++
		}
	}
	return CacheStats{Entries: live, Hits: c.hits, Misses: c.misses}
}

// Purge forgets every entry and resets the counters.
func (c *ChartCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[string]chartEntry)
	c.hits, c.misses = 0, 0
	c.mu.Unlock()
}

func (c *ChartCache) lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if ok && entry.expires.After(c.now()) {
		c.hits++
		return entry.markup, true
	}
	if ok {
		delete(c.entries, key)
	}
	c.misses++
	return "", false
}

func (c *ChartCache) store(key, markup string) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = chartEntry{markup: markup, expires: c.now().Add(c.ttl)}
}

func (c *ChartCache) evictLocked() {
	var victim string
	var soonest time.Time
	for key, entry := range c.entries {
		if victim == "" || entry.expires.Before(soonest) {
			victim, soonest = key, entry.expires
		}
	}
	delete(c.entries, victim)
}

// configHash fingerprints a chart configuration. encoding/json sorts map keys,
// so equal maps hash equally regardless of construction order.
func configHash(cfg map[string]any) string {
	if len(cfg) == 0 {
		return "empty"
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
