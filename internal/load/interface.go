package load

import (
	"context"

	"agent-router/internal/registry"
)

// Assessor reports the current load of an agent in [0,1].
// Implementations never block longer than their own timeout.
type Assessor interface {
	LoadOf(ctx context.Context, p registry.Profile) float64
}

// TelemetrySource is a live load feed.
type TelemetrySource interface {
	CurrentLoad(ctx context.Context, agentName string) (float64, error)
}
