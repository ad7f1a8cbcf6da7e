package timer

import "errors"

var (
	ErrNilCallback         = errors.New("timer: nil callback function")
	ErrNegativeDelay       = errors.New("timer: negative delay")
	ErrNonPositiveInterval = errors.New("timer: interval period must be positive")
)
