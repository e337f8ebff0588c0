package load

import (
	"context"

	"agent-router/internal/registry"
)

// StaticAssessor reports the declared load of every agent.
type StaticAssessor struct{}

func NewStatic() StaticAssessor {
	return StaticAssessor{}
}

func (StaticAssessor) LoadOf(_ context.Context, p registry.Profile) float64 {
	return p.DeclaredLoad
}
