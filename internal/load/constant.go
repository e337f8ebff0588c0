package load

import "time"

const (
	ModeStatic = "static"
	ModeRedis  = "redis"

	DefaultTimeout   = 50 * time.Millisecond
	DefaultCacheTTL  = 2 * time.Second
	DefaultCacheSize = 1024

	// KeyPrefix is the Redis key namespace for live load values.
	KeyPrefix = "agent:load:"

	connectTimeout = 5 * time.Second
)

const LogPrefix = "internal.load"
