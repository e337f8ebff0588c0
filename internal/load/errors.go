package load

import "errors"

var (
	ErrNoTelemetry  = errors.New("no telemetry for agent")
	ErrOutOfRange   = errors.New("load out of range")
	ErrInvalidValue = errors.New("telemetry value is not a number")
)
