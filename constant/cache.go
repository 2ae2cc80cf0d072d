package constant

import "time"

// Cache configuration constants
const (
	// CacheTTL is how long a resolution, gateway or response entry stays fresh
	CacheTTL = 15 * time.Minute
	// CacheNumCounters is the number of keys to track frequency (1M)
	CacheNumCounters = 1e6
	// CacheMaxCost is the maximum number of entries held by a key/value store
	CacheMaxCost = 1 << 16
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
	// ResponseCacheMaxCost is the byte budget of the response cache (256MB)
	ResponseCacheMaxCost = 256 << 20
)

// CacheControlValue is set on every successful proxied response
const CacheControlValue = "max-age=900, s-maxage=900"
