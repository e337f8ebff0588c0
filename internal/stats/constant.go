package stats

const (
	DefaultHistoryCapacity = 1000
	DefaultQueueSize       = 4096

	// History is cut back to this share of capacity when it overflows.
	trimRatio = 0.8

	LogPrefix = "internal.stats"
)

// Outcome labels
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)
