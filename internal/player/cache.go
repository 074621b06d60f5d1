package player

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig sizes the identity cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default identity cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports identity cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedIdentity wraps a resolved player id with version metadata
type cachedIdentity struct {
	Version  string
	PlayerID int64
	CachedAt time.Time
}

// identityCache maps Telegram user ids to player ids. Only the id mapping
// is cached; balances are always read under the row lock.
type identityCache struct {
	lru    *expirable.LRU[int64, *cachedIdentity]
	hits   atomic.Int64
	misses atomic.Int64
}

func newIdentityCache(cfg CacheConfig) *identityCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &identityCache{
		lru: expirable.NewLRU[int64, *cachedIdentity](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached player id for a Telegram user.
// Entries with a stale schema version are dropped.
func (c *identityCache) Get(telegramID int64) (int64, bool) {
	entry, found := c.lru.Get(telegramID)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(telegramID)
		}
		c.misses.Add(1)
		return 0, false
	}
	c.hits.Add(1)
	return entry.PlayerID, true
}

// Set caches the player id for a Telegram user
func (c *identityCache) Set(telegramID, playerID int64) {
	c.lru.Add(telegramID, &cachedIdentity{
		Version:  CacheSchemaVersion,
		PlayerID: playerID,
		CachedAt: time.Now(),
	})
}

// Invalidate removes one mapping
func (c *identityCache) Invalidate(telegramID int64) {
	c.lru.Remove(telegramID)
}

// Stats returns hit/miss counters and the current size
func (c *identityCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
