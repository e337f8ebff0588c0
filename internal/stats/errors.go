package stats

import "errors"

var ErrClosed = errors.New("stats tracker closed")
