package nominal

import (
	"errors"
	"fmt"
)

// errNoReason marks a predicate rejection that carries no explanation; the
// assertion path replaces it with the synthesized default message.
var errNoReason = errors.New("nominal: rejected without reason")

// Guard validates values of a nominal (defined) type T. The nominal tag is
// T itself: declaring `type Email string` makes Email incompatible with
// plain strings at compile time at zero runtime cost, and the Guard is the
// checked construction path for such values. A Guard holds a single
// immutable validator closure shared by Is, Assert, Identity and Must, so
// all operations agree on every input.
//
// An explicit conversion such as Email(s) bypasses validation; it is the
// deliberate unsafe escape hatch and should be confined to trusted call
// sites.
type Guard[T any] struct {
	validate func(T) error
}

// New returns a Guard backed by a validator that reports a rejection as a
// non-nil error whose message becomes the validation failure reason.
// The validator must be pure and deterministic. New panics if validate is
// nil.
func New[T any](validate func(T) error) Guard[T] {
	if validate == nil {
		panic(ErrNilValidator)
	}
	return Guard[T]{validate: validate}
}

// NewPredicate returns a Guard backed by a boolean predicate. Rejections
// carry no reason of their own; the assertion path synthesizes the default
// "invalid value <v>" message. NewPredicate panics if pred is nil.
func NewPredicate[T any](pred func(T) bool) Guard[T] {
	if pred == nil {
		panic(ErrNilValidator)
	}
	return Guard[T]{validate: func(v T) error {
		if !pred(v) {
			return errNoReason
		}
		return nil
	}}
}

// Is reports whether the validator accepts v. It never fails for a
// well-formed validator and does not mutate v.
func (g Guard[T]) Is(v T) bool {
	return g.validate(v) == nil
}

// Assert returns nil when the validator accepts v, and a *ValidationError
// otherwise. The error message is the validator-supplied reason, or the
// synthesized default when the validator rejected without one. The original
// validator error remains reachable through errors.Is/As.
func (g Guard[T]) Assert(v T) error {
	err := g.validate(v)
	if err == nil {
		return nil
	}
	if errors.Is(err, errNoReason) {
		return &ValidationError{Reason: fmt.Sprintf("invalid value %v", v)}
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &ValidationError{Reason: err.Error(), cause: err}
}

// Identity validates v and returns it unchanged, now vouched for as a
// well-formed value of the nominal type. It fails with the same
// *ValidationError as Assert.
func (g Guard[T]) Identity(v T) (T, error) {
	if err := g.Assert(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Must validates v and returns it, panicking with the *ValidationError on
// rejection. Intended for package-level constants and other inputs known
// valid at authoring time.
func (g Guard[T]) Must(v T) T {
	if err := g.Assert(v); err != nil {
		panic(err)
	}
	return v
}
