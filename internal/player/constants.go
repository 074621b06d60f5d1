package player

import "time"

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// Identity cache defaults
const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgUpsertPlayerFailed = "failed to register player: %w"
	ErrMsgGetPlayerFailed    = "failed to get player: %w"
	ErrMsgLadderLookupFailed = "failed to check ladder session: %w"
)

// Log messages
const (
	LogMsgPlayerCacheHit   = "Player identity cache hit"
	LogMsgPlayerRegistered = "Player resolved"
)
