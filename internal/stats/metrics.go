package stats

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics mirrors the tracker counters into Prometheus collectors.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	historySize prometheus.Gauge
	agents      prometheus.Gauge
	services    prometheus.Gauge
	dropped     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by a previous instance are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "router_requests_total",
				Help: "Total number of routing decisions",
			},
			[]string{"strategy", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "router_decision_duration_seconds",
				Help:    "Routing decision latency in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"strategy"},
		),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "router_history_size",
			Help: "Number of records in the route history buffer",
		}),
		agents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "router_registered_agents",
			Help: "Number of registered agents",
		}),
		services: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "router_registered_services",
			Help: "Number of registered services",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "router_stats_dropped_total",
			Help: "Records dropped because the stats queue was full",
		}),
	}

	var err error
	if m.requests, err = register(reg, m.requests); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.historySize, err = register(reg, m.historySize); err != nil {
		return nil, err
	}
	if m.agents, err = register(reg, m.agents); err != nil {
		return nil, err
	}
	if m.services, err = register(reg, m.services); err != nil {
		return nil, err
	}
	if m.dropped, err = register(reg, m.dropped); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observe(rec Record) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(rec.Strategy, outcomeLabel(rec.Success)).Inc()
	m.duration.WithLabelValues(rec.Strategy).Observe(rec.Latency.Seconds())
}

func (m *Metrics) setHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}

func (m *Metrics) incDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

// SetRegistry updates the registry size gauges.
func (m *Metrics) SetRegistry(agents, services int) {
	if m == nil {
		return
	}
	m.agents.Set(float64(agents))
	m.services.Set(float64(services))
}

func outcomeLabel(success bool) string {
	if success {
		return OutcomeSucceeded
	}
	return OutcomeFailed
}
