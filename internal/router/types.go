package router

import (
	"strings"
	"time"

	"agent-router/internal/semantic"
)

// Strategy selects how the final agent is picked from the ranked candidates.
type Strategy int

const (
	// StrategyDefault resolves to the configured default strategy.
	StrategyDefault Strategy = iota
	StrategyIntelligent
	StrategySemanticBased
	StrategyLoadBalanced
	StrategyCapabilityMatched
	StrategyPriorityBased
	StrategyHybrid
)

var strategyNames = map[Strategy]string{
	StrategyDefault:           "default",
	StrategyIntelligent:       "intelligent",
	StrategySemanticBased:     "semantic_based",
	StrategyLoadBalanced:      "load_balanced",
	StrategyCapabilityMatched: "capability_matched",
	StrategyPriorityBased:     "priority_based",
	StrategyHybrid:            "hybrid",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Strategies lists every concrete strategy.
func Strategies() []Strategy {
	return []Strategy{
		StrategyIntelligent,
		StrategySemanticBased,
		StrategyLoadBalanced,
		StrategyCapabilityMatched,
		StrategyPriorityBased,
		StrategyHybrid,
	}
}

// ParseStrategy accepts the names printed by String, case-insensitively.
// An empty name is StrategyDefault.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyDefault, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return StrategyDefault, ErrUnknownStrategy
}

// Outcome tags a result as a real match or the fallback route.
type Outcome string

const (
	OutcomeMatched  Outcome = "matched"
	OutcomeFallback Outcome = "fallback"
)

// State is a step of a single routing call.
type State string

const (
	StateReceived  State = "RECEIVED"
	StateAnalyzed  State = "ANALYZED"
	StateMatched   State = "MATCHED"
	StateDecided   State = "DECIDED"
	StateSucceeded State = "SUCCEEDED"
	StateFailed    State = "FAILED"
)

// RouteRequest is a unit of work to be routed. It is not modified by the router.
type RouteRequest struct {
	ID                   string
	Content              string
	Context              map[string]any
	Priority             int
	Timeout              time.Duration
	RequiredCapabilities []string
	Metadata             map[string]string
}

// AlternativeRoute is a runner-up of a decision.
type AlternativeRoute struct {
	AgentName         string
	ServiceName       string
	MatchScore        float64
	LoadAdjustedScore float64
}

// RouteResult is the decision for one request. TargetAgent is never empty.
type RouteResult struct {
	RequestID         string
	TargetAgent       string
	TargetService     string
	Confidence        float64
	Reasoning         string
	EstimatedTime     time.Duration
	AlternativeRoutes []AlternativeRoute
	Strategy          Strategy
	Outcome           Outcome
	Features          semantic.Features
}
