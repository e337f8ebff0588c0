package stats_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, success bool, latency time.Duration) stats.Record {
	return stats.Record{
		Timestamp:   time.Now(),
		RequestID:   id,
		TargetAgent: "architect_agent",
		Confidence:  0.63,
		Latency:     latency,
		Success:     success,
		Strategy:    "intelligent",
	}
}

func flush(t *testing.T, tr *stats.Tracker) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tr.Flush(ctx))
}

func TestTrackerCounters(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{})
	defer tr.Close()

	tr.Record(rec("1", true, 10*time.Millisecond))
	tr.Record(rec("2", false, 20*time.Millisecond))
	tr.Record(rec("3", true, 30*time.Millisecond))
	flush(t, tr)

	s := tr.Stats()
	assert.Equal(t, uint64(3), s.TotalRequests)
	assert.Equal(t, uint64(2), s.SuccessfulRoutes)
	assert.Equal(t, uint64(1), s.FailedRoutes)
	assert.Equal(t, 20*time.Millisecond, s.AverageResponseTime)
	assert.InDelta(t, 2.0/3.0, s.RouteAccuracy, 1e-9)
	assert.Equal(t, 3, s.HistorySize)
}

func TestTrackerEmptySnapshot(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{})
	defer tr.Close()

	s := tr.Stats()
	assert.Zero(t, s.TotalRequests)
	assert.Zero(t, s.RouteAccuracy)
	assert.Empty(t, tr.History(10))
}

func TestTrackerCounterIdentityUnderConcurrency(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{QueueSize: 10000})
	defer tr.Close()

	var wg sync.WaitGroup
	stopReader := make(chan struct{})
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			select {
			case <-stopReader:
				return
			default:
				s := tr.Stats()
				if s.SuccessfulRoutes+s.FailedRoutes != s.TotalRequests {
					t.Errorf("counter identity broken: %+v", s)
					return
				}
			}
		}
	}()

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				tr.Record(rec(fmt.Sprintf("%d-%d", w, i), i%3 != 0, time.Millisecond))
			}
		}(w)
	}
	wg.Wait()
	flush(t, tr)
	close(stopReader)
	<-readerDone

	s := tr.Stats()
	assert.Equal(t, uint64(2000), s.TotalRequests)
	assert.Equal(t, s.TotalRequests, s.SuccessfulRoutes+s.FailedRoutes)
	assert.Zero(t, s.DroppedRecords)
}

func TestTrackerHistoryTrim(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{HistoryCapacity: 10})
	defer tr.Close()

	for i := 0; i < 10; i++ {
		tr.Record(rec(fmt.Sprint(i), true, time.Millisecond))
	}
	flush(t, tr)
	assert.Len(t, tr.History(0), 10)

	tr.Record(rec("10", true, time.Millisecond))
	flush(t, tr)

	h := tr.History(0)
	require.Len(t, h, 8)
	assert.Equal(t, "10", h[0].RequestID)
	assert.Equal(t, "3", h[7].RequestID)
	assert.Equal(t, 8, tr.Stats().HistorySize)
	assert.Equal(t, uint64(11), tr.Stats().TotalRequests)
}

func TestTrackerHistoryNeverExceedsCapacity(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{HistoryCapacity: 1000})
	defer tr.Close()

	for i := 0; i < 2500; i++ {
		tr.Record(rec(fmt.Sprint(i), true, time.Millisecond))
		if i%100 == 0 {
			flush(t, tr)
			assert.LessOrEqual(t, len(tr.History(0)), 1000)
		}
	}
	flush(t, tr)
	assert.LessOrEqual(t, len(tr.History(0)), 1000)
	assert.Equal(t, "2499", tr.History(1)[0].RequestID)
}

func TestTrackerHistoryLimit(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{})
	defer tr.Close()

	for i := 0; i < 5; i++ {
		tr.Record(rec(fmt.Sprint(i), true, time.Millisecond))
	}
	flush(t, tr)

	h := tr.History(2)
	require.Len(t, h, 2)
	assert.Equal(t, "4", h[0].RequestID)
	assert.Equal(t, "3", h[1].RequestID)
	assert.Len(t, tr.History(50), 5)
}

func TestTrackerRecordNeverBlocks(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{QueueSize: 1})
	defer tr.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			tr.Record(rec(fmt.Sprint(i), true, time.Millisecond))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Record blocked")
	}
	flush(t, tr)

	s := tr.Stats()
	assert.Equal(t, uint64(10000), s.TotalRequests+s.DroppedRecords)
}

func TestTrackerClose(t *testing.T) {
	tr := stats.New(log.NewNop(), stats.Options{})

	for i := 0; i < 100; i++ {
		tr.Record(rec(fmt.Sprint(i), true, time.Millisecond))
	}
	tr.Close()
	tr.Close()

	assert.Equal(t, uint64(100), tr.Stats().TotalRequests)
	assert.ErrorIs(t, tr.Flush(context.Background()), stats.ErrClosed)

	tr.Record(rec("late", true, time.Millisecond))
	assert.Equal(t, uint64(1), tr.Stats().DroppedRecords)
}

func TestTrackerRecordRacingClose(t *testing.T) {
	const writers, perWriter = 8, 500

	for round := 0; round < 20; round++ {
		tr := stats.New(log.NewNop(), stats.Options{QueueSize: 64})

		var wg sync.WaitGroup
		start := make(chan struct{})
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for i := 0; i < perWriter; i++ {
					tr.Record(rec("r", true, time.Millisecond))
				}
			}()
		}

		close(start)
		tr.Close()
		wg.Wait()

		s := tr.Stats()
		require.Equal(t, uint64(writers*perWriter), s.TotalRequests+s.DroppedRecords, "round %d", round)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := stats.NewMetrics(reg)
	require.NoError(t, err)

	again, err := stats.NewMetrics(reg)
	require.NoError(t, err, "re-registration reuses collectors")

	tr := stats.New(log.NewNop(), stats.Options{Metrics: m})
	defer tr.Close()

	tr.Record(rec("1", true, time.Millisecond))
	tr.Record(rec("2", false, time.Millisecond))
	flush(t, tr)
	again.SetRegistry(6, 1)

	expected := `
# HELP router_requests_total Total number of routing decisions
# TYPE router_requests_total counter
router_requests_total{outcome="failed",strategy="intelligent"} 1
router_requests_total{outcome="succeeded",strategy="intelligent"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "router_requests_total"))

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP router_registered_agents Number of registered agents
# TYPE router_registered_agents gauge
router_registered_agents 6
# HELP router_history_size Number of records in the route history buffer
# TYPE router_history_size gauge
router_history_size 2
`), "router_registered_agents", "router_history_size"))
}
