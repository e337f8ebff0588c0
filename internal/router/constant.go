package router

import "time"

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixRegister = "internal.router.Register"
	LogPrefixMonitor  = "internal.router.Monitor"
)

// Fallback route
const (
	DefaultAgent       = "default_handler"
	DefaultService     = "command_master"
	FallbackConfidence = 0.1
)

// Request defaults
const (
	DefaultPriority = 5
	DefaultTimeout  = 30 * time.Second
	MaxAlternatives = 2
)

// Strategy defaults
const (
	DefaultLookahead             = 3
	DefaultHighPriorityThreshold = 3
	DefaultHybridAlpha           = 0.7
	DefaultMonitorInterval       = time.Minute
)

// Reasoning templates. A load factor is the spare capacity, 1 - load.
const (
	ReasonNoMatch         = "no specialized match"
	ReasonDecisionTimeout = "decision timeout"
	ReasonDecisionFailed  = "decision failed: %v"
	ReasonIntelligent     = "intelligent routing: match score %.2f, load factor %.2f"
	ReasonSemantic        = "semantic match: match score %.2f"
	ReasonCapability      = "capability match: %d matching tags, match score %.2f"
	ReasonLoadBalanced    = "least loaded: load %.2f, match score %.2f"
	ReasonHighPriority    = "high priority %d: match score %.2f"
	ReasonHybrid          = "hybrid score %.2f (alpha %.2f): match score %.2f, load %.2f"
)
