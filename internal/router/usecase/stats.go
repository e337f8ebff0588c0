package usecase

import (
	"context"
	"time"

	"agent-router/internal/router"
	"agent-router/internal/stats"
)

func (uc *implUseCase) Stats(ctx context.Context) stats.Snapshot {
	s := uc.tracker.Stats()
	counts := uc.registry.Counts()
	s.RegisteredAgents = counts.Agents
	s.RegisteredServices = counts.Services
	return s
}

func (uc *implUseCase) History(ctx context.Context, limit int) []stats.Record {
	return uc.tracker.History(limit)
}

// Start launches the periodic monitor. It stops when ctx is done or on Close.
func (uc *implUseCase) Start(ctx context.Context) {
	uc.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		uc.monitorCancel = cancel
		uc.monitorDone = make(chan struct{})
		uc.refreshRegistryGauges()
		go uc.monitor(ctx, uc.monitorDone)
	})
}

// Close stops the monitor and drains the stats tracker.
func (uc *implUseCase) Close() {
	uc.closeOnce.Do(func() {
		uc.startOnce.Do(func() {})
		if uc.monitorCancel != nil {
			uc.monitorCancel()
			<-uc.monitorDone
		}
		uc.tracker.Close()
	})
}

func (uc *implUseCase) monitor(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(uc.cfg.MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := uc.Stats(ctx)
			uc.refreshRegistryGauges()
			uc.l.Infof(ctx, "%s: total=%d ok=%d failed=%d accuracy=%.2f avg=%s agents=%d history=%d dropped=%d",
				router.LogPrefixMonitor, s.TotalRequests, s.SuccessfulRoutes, s.FailedRoutes,
				s.RouteAccuracy, s.AverageResponseTime, s.RegisteredAgents, s.HistorySize, s.DroppedRecords)
		}
	}
}
