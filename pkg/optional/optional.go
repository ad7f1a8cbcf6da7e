package optional

import (
	"fmt"
	"reflect"
)

// Optional is an immutable container that either holds a value of type T or
// is empty. The zero value is an empty Optional. Combinators return new
// instances and never mutate the receiver, so values can be shared freely
// across goroutines.
type Optional[T any] struct {
	value   T
	present bool
}

// Empty returns an Optional holding no value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of returns an Optional holding the given value.
// It panics with ErrNilValue if the value is nil (for nilable kinds);
// use OfNullable when the value may legitimately be nil.
func Of[T any](value T) Optional[T] {
	if isNil(value) {
		panic(ErrNilValue)
	}
	return Optional[T]{value: value, present: true}
}

// OfNullable returns an Optional holding the given value, or an empty
// Optional if the value is nil. It never fails.
func OfNullable[T any](value T) Optional[T] {
	if isNil(value) {
		return Optional[T]{}
	}
	return Optional[T]{value: value, present: true}
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value, or ErrNoSuchElement if the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoSuchElement
	}
	return o.value, nil
}

// MustGet returns the held value and panics with ErrNoSuchElement if the
// Optional is empty. Use only when presence has already been established.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrNoSuchElement)
	}
	return o.value
}

// IfPresent invokes action with the held value if one is present, and does
// nothing otherwise. It panics with ErrNilFunction if action is nil.
func (o Optional[T]) IfPresent(action func(T)) {
	if action == nil {
		panic(ErrNilFunction)
	}
	if o.present {
		action(o.value)
	}
}

// IfPresentOrElse invokes action with the held value if one is present,
// and emptyAction otherwise. Both callbacks are validated before branching,
// so a nil argument panics with ErrNilFunction even on the branch that
// would not have run.
func (o Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if action == nil || emptyAction == nil {
		panic(ErrNilFunction)
	}
	if o.present {
		action(o.value)
		return
	}
	emptyAction()
}

// Filter returns the receiver if a value is present and the predicate
// accepts it, and an empty Optional otherwise. It panics with
// ErrNilFunction if predicate is nil.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if predicate == nil {
		panic(ErrNilFunction)
	}
	if !o.present || !predicate(o.value) {
		return Optional[T]{}
	}
	return o
}

// Map applies mapper to the held value and wraps the result; a nil result
// yields an empty Optional. If the receiver is empty, mapper is not invoked.
// For mappings to a different type use the package-level Map function.
// It panics with ErrNilFunction if mapper is nil.
func (o Optional[T]) Map(mapper func(T) T) Optional[T] {
	if mapper == nil {
		panic(ErrNilFunction)
	}
	if !o.present {
		return Optional[T]{}
	}
	return OfNullable(mapper(o.value))
}

// FlatMap applies mapper to the held value and returns its result directly,
// without double-wrapping. If the receiver is empty, mapper is not invoked.
// For mappings to a different type use the package-level FlatMap function.
// It panics with ErrNilFunction if mapper is nil.
func (o Optional[T]) FlatMap(mapper func(T) Optional[T]) Optional[T] {
	if mapper == nil {
		panic(ErrNilFunction)
	}
	if !o.present {
		return Optional[T]{}
	}
	return mapper(o.value)
}

// Or returns the receiver if a value is present; otherwise it invokes
// supplier and returns its result. The supplier is validated before
// branching and a nil supplier panics with ErrNilFunction even when the
// receiver is present.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if supplier == nil {
		panic(ErrNilFunction)
	}
	if o.present {
		return o
	}
	return supplier()
}

// OrElse returns the held value if present, and other verbatim otherwise.
// The fallback is not checked for nil.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the held value if present; otherwise it invokes
// supplier and returns its result. The supplier is only consulted when the
// receiver is empty, so a nil supplier panics with ErrNilFunction only on
// the empty path.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	if supplier == nil {
		panic(ErrNilFunction)
	}
	return supplier()
}

// OrElseErr returns the held value if present. Otherwise it invokes
// supplier to obtain the error to fail with and returns it unchanged.
// The supplier is contractually required to produce a non-nil error; a nil
// result is a contract violation reported as ErrNotThrowable.
// A nil supplier panics with ErrNilFunction.
func (o Optional[T]) OrElseErr(supplier func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	if supplier == nil {
		panic(ErrNilFunction)
	}
	var zero T
	if err := supplier(); err != nil {
		return zero, err
	}
	return zero, ErrNotThrowable
}

// Equals reports structural equality: both empty, or both present with
// values equal under reflect.DeepEqual.
func (o Optional[T]) Equals(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// String implements fmt.Stringer for debugging output.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// isNil reports whether v is nil or a typed nil of a nilable kind. Values
// of non-nilable kinds have no absence marker and are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
