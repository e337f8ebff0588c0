package usecase

import (
	"strings"

	"agent-router/internal/matcher"
)

func head(cs []matcher.Candidate, n int) []matcher.Candidate {
	if n < len(cs) {
		return cs[:n]
	}
	return cs
}

func without(cs []matcher.Candidate, skip int) []matcher.Candidate {
	out := make([]matcher.Candidate, 0, len(cs)-1)
	for i, c := range cs {
		if i != skip {
			out = append(out, c)
		}
	}
	return out
}

// byScore orders by match score descending, then agent name.
func byScore(a, b matcher.Candidate) bool {
	if a.MatchScore != b.MatchScore {
		return a.MatchScore > b.MatchScore
	}
	return a.AgentName < b.AgentName
}

// tagOverlap counts the terms found in any tag. A term matches a tag it
// equals or is contained in, so "design" matches "system_design".
func tagOverlap(tags, terms []string) int {
	n := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		for _, tag := range tags {
			if strings.Contains(tag, term) {
				n++
				break
			}
		}
	}
	return n
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
