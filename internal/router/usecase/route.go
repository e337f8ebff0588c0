package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agent-router/internal/matcher"
	"agent-router/internal/router"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/google/uuid"
)

// Route picks an agent for req. The only error returned is ErrUnknownStrategy;
// every other failure degrades to the fallback route.
func (uc *implUseCase) Route(ctx context.Context, req router.RouteRequest, strategy router.Strategy) (router.RouteResult, error) {
	if strategy == router.StrategyDefault {
		strategy = uc.cfg.DefaultStrategy
	}
	decide, ok := uc.strategies[strategy]
	if !ok {
		return router.RouteResult{}, fmt.Errorf("%s: %w: %d", router.LogPrefixRoute, router.ErrUnknownStrategy, int(strategy))
	}

	start := time.Now()
	req = uc.normalize(req)
	if log.RequestID(ctx) == "" {
		ctx = log.WithRequestID(ctx, req.ID)
	}
	uc.trace(ctx, req.ID, router.StateReceived)

	dctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	ch := make(chan decision, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- decision{err: fmt.Errorf("%w: %v", router.ErrDecisionPanic, r)}
			}
		}()
		ch <- uc.decide(dctx, req, strategy, decide)
	}()

	var d decision
	select {
	case d = <-ch:
		if d.err != nil {
			uc.l.Errorf(ctx, "%s: request=%s: %v", router.LogPrefixRoute, req.ID, d.err)
			d.result = uc.fallback(req, strategy, fmt.Sprintf(router.ReasonDecisionFailed, d.err), semantic.Default())
			d.success = false
		}
	case <-dctx.Done():
		uc.l.Warnf(ctx, "%s: request=%s: %s after %s", router.LogPrefixRoute, req.ID, router.ReasonDecisionTimeout, req.Timeout)
		d = decision{
			result:  uc.fallback(req, strategy, router.ReasonDecisionTimeout, semantic.Default()),
			success: false,
		}
	}

	if d.success {
		uc.trace(ctx, req.ID, router.StateSucceeded)
	} else {
		uc.trace(ctx, req.ID, router.StateFailed)
	}

	latency := time.Since(start)
	uc.tracker.Record(stats.Record{
		Timestamp:     start,
		RequestID:     req.ID,
		TargetAgent:   d.result.TargetAgent,
		TargetService: d.result.TargetService,
		Confidence:    d.result.Confidence,
		Latency:       latency,
		Success:       d.success,
		Strategy:      strategy.String(),
		Outcome:       string(d.result.Outcome),
	})

	return d.result, nil
}

func (uc *implUseCase) normalize(req router.RouteRequest) router.RouteRequest {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Priority <= 0 {
		req.Priority = router.DefaultPriority
	}
	if req.Timeout <= 0 {
		req.Timeout = uc.cfg.DefaultTimeout
	}
	return req
}

func (uc *implUseCase) decide(ctx context.Context, req router.RouteRequest, strategy router.Strategy, fn strategyFunc) decision {
	features := uc.extractor.Extract(req.Content)
	uc.trace(ctx, req.ID, router.StateAnalyzed)

	candidates := uc.matcher.Match(features, uc.registry.Profiles(), req.RequiredCapabilities)
	uc.trace(ctx, req.ID, router.StateMatched)

	candidates = uc.annotateLoad(ctx, candidates)
	if len(candidates) == 0 {
		return decision{
			result:  uc.fallback(req, strategy, router.ReasonNoMatch, features),
			success: true,
		}
	}

	c := fn(decisionInput{req: req, features: features, candidates: candidates})
	uc.trace(ctx, req.ID, router.StateDecided)

	alts := make([]router.AlternativeRoute, 0, len(c.alternatives))
	for _, a := range c.alternatives {
		if len(alts) == router.MaxAlternatives {
			break
		}
		alts = append(alts, router.AlternativeRoute{
			AgentName:         a.AgentName,
			ServiceName:       a.ServiceName,
			MatchScore:        a.MatchScore,
			LoadAdjustedScore: a.LoadAdjustedScore,
		})
	}

	return decision{
		result: router.RouteResult{
			RequestID:         req.ID,
			TargetAgent:       c.leader.AgentName,
			TargetService:     c.leader.ServiceName,
			Confidence:        clamp01(c.confidence),
			Reasoning:         c.reasoning,
			EstimatedTime:     c.leader.EstimatedTime,
			AlternativeRoutes: alts,
			Strategy:          strategy,
			Outcome:           router.OutcomeMatched,
			Features:          features,
		},
		success: true,
	}
}

// annotateLoad fetches every candidate's load concurrently. A candidate whose
// agent left the registry since matching is dropped.
func (uc *implUseCase) annotateLoad(ctx context.Context, candidates []matcher.Candidate) []matcher.Candidate {
	present := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		p, ok := uc.registry.Agent(candidates[i].AgentName)
		if !ok {
			uc.l.Warnf(ctx, "%s: unknown target %s, dropping candidate", router.LogPrefixRoute, candidates[i].AgentName)
			continue
		}
		present[i] = true

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			candidates[i].SetLoad(uc.assessor.LoadOf(ctx, p))
		}(i)
	}
	wg.Wait()

	out := candidates[:0]
	for i, c := range candidates {
		if present[i] {
			out = append(out, c)
		}
	}
	return out
}

func (uc *implUseCase) fallback(req router.RouteRequest, strategy router.Strategy, reason string, features semantic.Features) router.RouteResult {
	return router.RouteResult{
		RequestID:         req.ID,
		TargetAgent:       uc.cfg.DefaultAgent,
		TargetService:     uc.cfg.DefaultService,
		Confidence:        router.FallbackConfidence,
		Reasoning:         reason,
		EstimatedTime:     uc.matcher.Config().BaseTime,
		AlternativeRoutes: []router.AlternativeRoute{},
		Strategy:          strategy,
		Outcome:           router.OutcomeFallback,
		Features:          features,
	}
}

func (uc *implUseCase) trace(ctx context.Context, id string, state router.State) {
	uc.l.Debugf(ctx, "%s: request=%s state=%s", router.LogPrefixRoute, id, state)
}
