package matcher

import "time"

const (
	DefaultThreshold    = 0.5
	DefaultIntentWeight = 0.6
	DefaultDomainWeight = 0.4
	DefaultBaseTime     = 30 * time.Second

	// Partial credit for an unsupported intent or domain.
	IntentMissScore = 0.3
	DomainMissScore = 0.5
	FullMatchScore  = 1.0
)

// DefaultConfig returns the stock heuristics.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		IntentWeight: DefaultIntentWeight,
		DomainWeight: DefaultDomainWeight,
		BaseTime:     DefaultBaseTime,
	}
}
