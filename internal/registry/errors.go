package registry

import "errors"

var (
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidLoad        = errors.New("declared load must be between 0.0 and 1.0")
	ErrInvalidPerformance = errors.New("performance score must be in (0.0, 1.0]")
	ErrAgentNotFound      = errors.New("agent not found")
	ErrUnsupportedFormat  = errors.New("unsupported profile file format")
)
