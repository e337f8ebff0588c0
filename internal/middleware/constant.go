package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	DefaultRateLimitPerMin = 600
	maxLimiterEntries      = 1000
	limiterTTL             = 5 * time.Minute
)
