package middleware

import (
	"agent-router/pkg/log"
)

// Config is the dependency bag for Middleware.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
