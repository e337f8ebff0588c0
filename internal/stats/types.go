package stats

import "time"

// Record is one completed routing decision.
type Record struct {
	Timestamp     time.Time     `json:"timestamp"`
	RequestID     string        `json:"request_id"`
	TargetAgent   string        `json:"target_agent"`
	TargetService string        `json:"target_service"`
	Confidence    float64       `json:"confidence"`
	Latency       time.Duration `json:"latency"`
	Success       bool          `json:"success"`
	Strategy      string        `json:"strategy"`
	Outcome       string        `json:"outcome"`
}

// Snapshot is an immutable view of the counters.
// SuccessfulRoutes + FailedRoutes == TotalRequests holds for every snapshot.
type Snapshot struct {
	TotalRequests       uint64        `json:"total_requests"`
	SuccessfulRoutes    uint64        `json:"successful_routes"`
	FailedRoutes        uint64        `json:"failed_routes"`
	AverageResponseTime time.Duration `json:"average_response_time"`
	RouteAccuracy       float64       `json:"route_accuracy"`
	RegisteredAgents    int           `json:"registered_agents"`
	RegisteredServices  int           `json:"registered_services"`
	HistorySize         int           `json:"history_size"`
	DroppedRecords      uint64        `json:"dropped_records"`
}

// Options configures a Tracker.
type Options struct {
	HistoryCapacity int
	QueueSize       int
	Metrics         *Metrics
}

type command struct {
	rec     *Record
	flushed chan struct{}
}
