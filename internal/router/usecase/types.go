package usecase

import (
	"time"

	"agent-router/internal/matcher"
	"agent-router/internal/router"
	"agent-router/internal/semantic"
)

// Config tunes the decision engine. Zero values take the package defaults.
type Config struct {
	Matcher               matcher.Config
	Lookahead             int
	DefaultAgent          string
	DefaultService        string
	DefaultStrategy       router.Strategy
	DefaultTimeout        time.Duration
	HighPriorityThreshold int
	HybridAlpha           float64
	MonitorInterval       time.Duration
}

type decisionInput struct {
	req        router.RouteRequest
	features   semantic.Features
	candidates []matcher.Candidate
}

type choice struct {
	leader       matcher.Candidate
	confidence   float64
	reasoning    string
	alternatives []matcher.Candidate
}

type strategyFunc func(in decisionInput) choice

type decision struct {
	result  router.RouteResult
	success bool
	err     error
}
