package router

import (
	"context"

	"agent-router/internal/registry"
	"agent-router/internal/stats"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Routing
	Route(ctx context.Context, req RouteRequest, strategy Strategy) (RouteResult, error)

	// Registry
	RegisterAgent(ctx context.Context, name string, p registry.Profile) (bool, error)
	RegisterService(ctx context.Context, name string, info registry.ServiceInfo) (bool, error)
	DeregisterAgent(ctx context.Context, name string) error
	Agents(ctx context.Context) []registry.Profile

	// Observability
	Stats(ctx context.Context) stats.Snapshot
	History(ctx context.Context, limit int) []stats.Record
}
