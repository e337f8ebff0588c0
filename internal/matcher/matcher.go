package matcher

import (
	"sort"
	"time"

	"agent-router/internal/registry"
	"agent-router/internal/semantic"
)

// Matcher scores capability profiles against extracted features.
type Matcher struct {
	cfg Config
}

// New creates a Matcher. Zero fields of cfg take their defaults; a threshold
// outside (0, 1] falls back to DefaultThreshold.
func New(cfg Config) *Matcher {
	def := DefaultConfig()
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		cfg.Threshold = def.Threshold
	}
	if cfg.IntentWeight == 0 && cfg.DomainWeight == 0 {
		cfg.IntentWeight = def.IntentWeight
		cfg.DomainWeight = def.DomainWeight
	}
	if cfg.BaseTime <= 0 {
		cfg.BaseTime = def.BaseTime
	}
	return &Matcher{cfg: cfg}
}

// Config returns the effective configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Score computes the weighted match score of one profile.
func (m *Matcher) Score(f semantic.Features, p registry.Profile) float64 {
	intentMatch := IntentMissScore
	if p.SupportsIntent(f.Intent) {
		intentMatch = FullMatchScore
	}
	domainMatch := DomainMissScore
	if p.SupportsDomain(f.Domain) {
		domainMatch = FullMatchScore
	}
	return clamp01((m.cfg.IntentWeight*intentMatch + m.cfg.DomainWeight*domainMatch) * p.PerformanceScore)
}

// EstimatedTime is the base time scaled by the agent's performance.
func (m *Matcher) EstimatedTime(performance float64) time.Duration {
	if performance <= 0 {
		return m.cfg.BaseTime
	}
	return time.Duration(float64(m.cfg.BaseTime) / performance)
}

// Match returns candidates scoring at least the threshold, best first.
// Profiles missing any of the required tags are excluded before scoring.
// Equal scores are ordered by agent name.
func (m *Matcher) Match(f semantic.Features, profiles []registry.Profile, required []string) []Candidate {
	out := make([]Candidate, 0, len(profiles))
	for _, p := range profiles {
		if len(required) > 0 && !p.HasAllTags(required) {
			continue
		}
		score := m.Score(f, p)
		if score < m.cfg.Threshold {
			continue
		}
		c := Candidate{
			AgentName:        p.AgentName,
			ServiceName:      p.ServiceName,
			MatchScore:       score,
			EstimatedTime:    m.EstimatedTime(p.PerformanceScore),
			PerformanceScore: p.PerformanceScore,
			CapabilityTags:   append([]string(nil), p.CapabilityTags...),
		}
		c.SetLoad(p.DeclaredLoad)
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].AgentName < out[j].AgentName
	})
	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
