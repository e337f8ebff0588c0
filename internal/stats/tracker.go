package stats

import (
	"context"
	"sync"
	"sync/atomic"

	"agent-router/pkg/log"
)

// Tracker counts routing outcomes and keeps a bounded history.
// All mutations go through a single writer goroutine; Record never blocks.
type Tracker struct {
	l       log.Logger
	metrics *Metrics

	queue     chan command
	stop      chan struct{}
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once
	// sendMu orders Record sends before Close flips closed, so the final drain sees every accepted record.
	sendMu sync.RWMutex

	snapshot atomic.Pointer[Snapshot]
	dropped  atomic.Uint64

	histMu   sync.RWMutex
	history  []Record
	capacity int
	trimTo   int

	// owned by the writer goroutine
	total      uint64
	successful uint64
	failed     uint64
	avgNanos   float64
}

// New starts a Tracker. Call Close to stop its writer.
func New(l log.Logger, opts Options) *Tracker {
	if opts.HistoryCapacity <= 0 {
		opts.HistoryCapacity = DefaultHistoryCapacity
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	trimTo := int(float64(opts.HistoryCapacity) * trimRatio)
	if trimTo < 1 {
		trimTo = 1
	}

	t := &Tracker{
		l:        l,
		metrics:  opts.Metrics,
		queue:    make(chan command, opts.QueueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		history:  make([]Record, 0, opts.HistoryCapacity+1),
		capacity: opts.HistoryCapacity,
		trimTo:   trimTo,
	}
	t.snapshot.Store(&Snapshot{})

	go t.run()
	return t
}

// Record enqueues rec. When the queue is full the record is dropped and counted.
func (t *Tracker) Record(rec Record) {
	t.sendMu.RLock()
	defer t.sendMu.RUnlock()

	if t.closed.Load() {
		t.drop()
		return
	}
	select {
	case t.queue <- command{rec: &rec}:
	default:
		t.drop()
	}
}

func (t *Tracker) drop() {
	n := t.dropped.Add(1)
	t.metrics.incDropped()
	// Warn on the first drop and every 1000th after.
	if n == 1 || n%1000 == 0 {
		t.l.Warnf(context.Background(), "%s.Record: queue full or closed, %d records dropped", LogPrefix, n)
	}
}

// Flush waits until every record enqueued before the call has been applied.
func (t *Tracker) Flush(ctx context.Context) error {
	if t.closed.Load() {
		return ErrClosed
	}
	cmd := command{flushed: make(chan struct{})}
	select {
	case t.queue <- cmd:
	case <-t.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cmd.flushed:
		return nil
	case <-t.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close applies everything already queued and stops the writer. It is safe to call more than once.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.sendMu.Lock()
		t.closed.Store(true)
		t.sendMu.Unlock()

		close(t.stop)
		<-t.done
	})
}

// Stats returns the latest snapshot. Registry counts are left zero for the caller to fill.
func (t *Tracker) Stats() Snapshot {
	s := *t.snapshot.Load()
	s.DroppedRecords = t.dropped.Load()
	return s
}

// History returns up to limit records, most recent first. limit <= 0 means all.
func (t *Tracker) History(limit int) []Record {
	t.histMu.RLock()
	defer t.histMu.RUnlock()

	n := len(t.history)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, t.history[i])
	}
	return out
}

// Metrics returns the attached collectors, if any.
func (t *Tracker) Metrics() *Metrics {
	return t.metrics
}

func (t *Tracker) run() {
	defer close(t.done)
	for {
		select {
		case cmd := <-t.queue:
			t.apply(cmd)
		case <-t.stop:
			for {
				select {
				case cmd := <-t.queue:
					t.apply(cmd)
				default:
					return
				}
			}
		}
	}
}

func (t *Tracker) apply(cmd command) {
	if cmd.flushed != nil {
		close(cmd.flushed)
		return
	}
	rec := *cmd.rec

	t.total++
	if rec.Success {
		t.successful++
	} else {
		t.failed++
	}
	t.avgNanos += (float64(rec.Latency) - t.avgNanos) / float64(t.total)

	size := t.appendHistory(rec)

	t.snapshot.Store(&Snapshot{
		TotalRequests:       t.total,
		SuccessfulRoutes:    t.successful,
		FailedRoutes:        t.failed,
		AverageResponseTime: durationOf(t.avgNanos),
		RouteAccuracy:       float64(t.successful) / float64(t.total),
		HistorySize:         size,
	})

	t.metrics.observe(rec)
	t.metrics.setHistorySize(size)
}

func (t *Tracker) appendHistory(rec Record) int {
	t.histMu.Lock()
	defer t.histMu.Unlock()

	t.history = append(t.history, rec)
	if len(t.history) > t.capacity {
		n := copy(t.history, t.history[len(t.history)-t.trimTo:])
		clear(t.history[n:])
		t.history = t.history[:n]
	}
	return len(t.history)
}
