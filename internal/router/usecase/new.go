package usecase

import (
	"context"
	"sync"

	"agent-router/internal/load"
	"agent-router/internal/matcher"
	"agent-router/internal/registry"
	"agent-router/internal/router"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"
)

// implUseCase is the private implementation of router.UseCase.
type implUseCase struct {
	l         log.Logger
	registry  *registry.Registry
	extractor semantic.Extractor
	matcher   *matcher.Matcher
	assessor  load.Assessor
	tracker   *stats.Tracker
	cfg       Config

	strategies map[router.Strategy]strategyFunc

	monitorCancel context.CancelFunc
	monitorDone   chan struct{}
	startOnce     sync.Once
	closeOnce     sync.Once
}

var _ router.UseCase = (*implUseCase)(nil)

// New creates the routing UseCase.
func New(
	l log.Logger,
	reg *registry.Registry,
	extractor semantic.Extractor,
	assessor load.Assessor,
	tracker *stats.Tracker,
	cfg Config,
) *implUseCase {
	cfg = withDefaults(cfg)

	uc := &implUseCase{
		l:         l,
		registry:  reg,
		extractor: extractor,
		matcher:   matcher.New(cfg.Matcher),
		assessor:  assessor,
		tracker:   tracker,
		cfg:       cfg,
	}
	uc.strategies = map[router.Strategy]strategyFunc{
		router.StrategyIntelligent:       uc.intelligent,
		router.StrategySemanticBased:     uc.semanticBased,
		router.StrategyLoadBalanced:      uc.loadBalanced,
		router.StrategyCapabilityMatched: uc.capabilityMatched,
		router.StrategyPriorityBased:     uc.priorityBased,
		router.StrategyHybrid:            uc.hybrid,
	}
	return uc
}

func withDefaults(cfg Config) Config {
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = router.DefaultLookahead
	}
	if cfg.DefaultAgent == "" {
		cfg.DefaultAgent = router.DefaultAgent
	}
	if cfg.DefaultService == "" {
		cfg.DefaultService = router.DefaultService
	}
	if cfg.DefaultStrategy == router.StrategyDefault {
		cfg.DefaultStrategy = router.StrategyIntelligent
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = router.DefaultTimeout
	}
	if cfg.HighPriorityThreshold <= 0 {
		cfg.HighPriorityThreshold = router.DefaultHighPriorityThreshold
	}
	if cfg.HybridAlpha <= 0 || cfg.HybridAlpha > 1 {
		cfg.HybridAlpha = router.DefaultHybridAlpha
	}
	if cfg.MonitorInterval <= 0 {
		cfg.MonitorInterval = router.DefaultMonitorInterval
	}
	return cfg
}
