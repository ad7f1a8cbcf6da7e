package nominal

import "errors"

// ErrNilValidator is the panic value of New and NewPredicate when given a
// nil validator function.
var ErrNilValidator = errors.New("nominal: nil validator function")

// ValidationError reports a rejected value. Reason is either the
// validator-supplied explanation or the synthesized default message.
type ValidationError struct {
	Reason string
	cause  error
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the validator's original error, if any, for errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.cause
}
