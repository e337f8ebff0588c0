package stats

import (
	"math"
	"time"
)

func durationOf(nanos float64) time.Duration {
	return time.Duration(math.Round(nanos))
}
