package load

import (
	"context"
	"time"

	"agent-router/internal/registry"
	"agent-router/pkg/log"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Options configures a TelemetryAssessor.
type Options struct {
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

// TelemetryAssessor polls a TelemetrySource and falls back to the declared
// load on timeout, error or an out-of-range reading.
type TelemetryAssessor struct {
	l       log.Logger
	source  TelemetrySource
	timeout time.Duration
	cache   *expirable.LRU[string, float64]
}

// NewTelemetry creates a TelemetryAssessor. A CacheTTL below zero disables caching.
func NewTelemetry(l log.Logger, source TelemetrySource, opts Options) *TelemetryAssessor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}

	a := &TelemetryAssessor{
		l:       l,
		source:  source,
		timeout: opts.Timeout,
	}
	if opts.CacheTTL > 0 {
		a.cache = expirable.NewLRU[string, float64](opts.CacheSize, nil, opts.CacheTTL)
	}
	return a
}

type reading struct {
	load float64
	err  error
}

func (a *TelemetryAssessor) LoadOf(ctx context.Context, p registry.Profile) float64 {
	if a.cache != nil {
		if v, ok := a.cache.Get(p.AgentName); ok {
			return v
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// Buffered so a late source does not leak the goroutine.
	ch := make(chan reading, 1)
	go func() {
		v, err := a.source.CurrentLoad(ctx, p.AgentName)
		ch <- reading{load: v, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			a.l.Debugf(ctx, "%s.LoadOf: agent=%s: %v, using declared load", LogPrefix, p.AgentName, r.err)
			return p.DeclaredLoad
		}
		if r.load < 0 || r.load > 1 {
			a.l.Warnf(ctx, "%s.LoadOf: agent=%s: %v: %f", LogPrefix, p.AgentName, ErrOutOfRange, r.load)
			return p.DeclaredLoad
		}
		if a.cache != nil {
			a.cache.Add(p.AgentName, r.load)
		}
		return r.load
	case <-ctx.Done():
		a.l.Warnf(ctx, "%s.LoadOf: agent=%s: telemetry timed out after %s", LogPrefix, p.AgentName, a.timeout)
		return p.DeclaredLoad
	}
}
