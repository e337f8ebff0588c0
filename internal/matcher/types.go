package matcher

import "time"

// Config holds the scoring heuristics. The defaults carry over unexplained
// constants and are kept configurable.
type Config struct {
	Threshold    float64
	IntentWeight float64
	DomainWeight float64
	BaseTime     time.Duration
}

// Candidate is one agent scored against a request.
type Candidate struct {
	AgentName         string        `json:"agent_name"`
	ServiceName       string        `json:"service_name"`
	MatchScore        float64       `json:"match_score"`
	Load              float64       `json:"load"`
	LoadAdjustedScore float64       `json:"load_adjusted_score"`
	EstimatedTime     time.Duration `json:"estimated_time"`
	PerformanceScore  float64       `json:"performance_score"`
	CapabilityTags    []string      `json:"capability_tags,omitempty"`
}

// SetLoad annotates the candidate with its current load and derives the load-adjusted score.
func (c *Candidate) SetLoad(load float64) {
	c.Load = clamp01(load)
	c.LoadAdjustedScore = c.MatchScore * (1 - c.Load)
}
