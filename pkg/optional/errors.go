package optional

import "errors"

var (
	// ErrNilValue is the panic value of Of when given a nil value.
	ErrNilValue = errors.New("optional: nil value passed to Of")

	// ErrNilFunction is the panic value raised when a required function
	// argument is nil.
	ErrNilFunction = errors.New("optional: nil function argument")

	// ErrNoSuchElement is returned when retrieving a value from an empty
	// Optional without a fallback.
	ErrNoSuchElement = errors.New("optional: no value present")

	// ErrNotThrowable is returned by OrElseErr when its error supplier
	// violates the contract by returning a nil error.
	ErrNotThrowable = errors.New("optional: supplier is not throwable")
)
