package router

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown routing strategy")
	ErrDecisionPanic   = errors.New("routing decision panicked")
)
