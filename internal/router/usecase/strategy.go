package usecase

import (
	"fmt"
	"sort"

	"agent-router/internal/matcher"
	"agent-router/internal/router"
)

// intelligent re-ranks the top of the match list by load. Only the first
// Lookahead candidates are considered, and a challenger replaces the leader
// only when its load-adjusted score is strictly greater.
func (uc *implUseCase) intelligent(in decisionInput) choice {
	window := head(in.candidates, uc.cfg.Lookahead)

	best := 0
	for i := 1; i < len(window); i++ {
		if window[i].LoadAdjustedScore > window[best].LoadAdjustedScore {
			best = i
		}
	}
	leader := window[best]

	return choice{
		leader:       leader,
		confidence:   leader.LoadAdjustedScore,
		reasoning:    fmt.Sprintf(router.ReasonIntelligent, leader.MatchScore, 1-leader.Load),
		alternatives: without(window, best),
	}
}

func (uc *implUseCase) semanticBased(in decisionInput) choice {
	leader := in.candidates[0]
	return choice{
		leader:       leader,
		confidence:   leader.MatchScore,
		reasoning:    fmt.Sprintf(router.ReasonSemantic, leader.MatchScore),
		alternatives: in.candidates[1:],
	}
}

// capabilityMatched prefers agents whose tags cover the most request keywords
// and required capabilities.
func (uc *implUseCase) capabilityMatched(in decisionInput) choice {
	terms := append(append([]string{}, in.features.Keywords...), in.req.RequiredCapabilities...)

	ranked := append([]matcher.Candidate(nil), in.candidates...)
	overlap := make(map[string]int, len(ranked))
	for _, c := range ranked {
		overlap[c.AgentName] = tagOverlap(c.CapabilityTags, terms)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		oi, oj := overlap[ranked[i].AgentName], overlap[ranked[j].AgentName]
		if oi != oj {
			return oi > oj
		}
		return byScore(ranked[i], ranked[j])
	})

	leader := ranked[0]
	return choice{
		leader:       leader,
		confidence:   leader.MatchScore,
		reasoning:    fmt.Sprintf(router.ReasonCapability, overlap[leader.AgentName], leader.MatchScore),
		alternatives: ranked[1:],
	}
}

func (uc *implUseCase) loadBalanced(in decisionInput) choice {
	return leastLoaded(in.candidates)
}

// priorityBased sends urgent requests (low Priority value) to the best match
// regardless of load; the rest go to the least loaded agent of the lookahead window.
func (uc *implUseCase) priorityBased(in decisionInput) choice {
	if in.req.Priority <= uc.cfg.HighPriorityThreshold {
		leader := in.candidates[0]
		return choice{
			leader:       leader,
			confidence:   leader.MatchScore,
			reasoning:    fmt.Sprintf(router.ReasonHighPriority, in.req.Priority, leader.MatchScore),
			alternatives: in.candidates[1:],
		}
	}
	return leastLoaded(head(in.candidates, uc.cfg.Lookahead))
}

func (uc *implUseCase) hybrid(in decisionInput) choice {
	alpha := uc.cfg.HybridAlpha
	score := func(c matcher.Candidate) float64 {
		return alpha*c.MatchScore + (1-alpha)*(1-c.Load)
	}

	ranked := append([]matcher.Candidate(nil), in.candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(ranked[i]), score(ranked[j])
		if si != sj {
			return si > sj
		}
		return byScore(ranked[i], ranked[j])
	})

	leader := ranked[0]
	return choice{
		leader:       leader,
		confidence:   leader.LoadAdjustedScore,
		reasoning:    fmt.Sprintf(router.ReasonHybrid, score(leader), alpha, leader.MatchScore, leader.Load),
		alternatives: ranked[1:],
	}
}

func leastLoaded(candidates []matcher.Candidate) choice {
	ranked := append([]matcher.Candidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Load != ranked[j].Load {
			return ranked[i].Load < ranked[j].Load
		}
		return byScore(ranked[i], ranked[j])
	})

	leader := ranked[0]
	return choice{
		leader:       leader,
		confidence:   leader.LoadAdjustedScore,
		reasoning:    fmt.Sprintf(router.ReasonLoadBalanced, leader.Load, leader.MatchScore),
		alternatives: ranked[1:],
	}
}
