package fn

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Supplier produces a value on demand.
type Supplier[T any] func() T

// Consumer accepts a value and performs a side effect.
type Consumer[T any] func(T)

// BiConsumer accepts two values and performs a side effect.
type BiConsumer[T, U any] func(T, U)

// Function maps a value of one type to another.
type Function[T, U any] func(T) U

// BiFunction maps two values to a result.
type BiFunction[T, U, R any] func(T, U) R

// UnaryOperator maps a value to another of the same type.
type UnaryOperator[T any] func(T) T

// Runnable performs a side effect with no input or output.
type Runnable func()

// And returns a predicate satisfied only when both p and other are.
// Evaluation short-circuits on the first false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or returns a predicate satisfied when either p or other is.
// Evaluation short-circuits on the first true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate returns the logical inverse of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// AndThen returns a consumer that invokes c and then next with the same
// value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// Compose returns f after g, in mathematical composition order: the result
// applies g, then feeds its output into f. For the pipeline reading use
// Then.
func Compose[T, U, R any](f Function[U, R], g Function[T, U]) Function[T, R] {
	return func(v T) R {
		return f(g(v))
	}
}

// Then returns the pipeline of f followed by g: the result applies f, then
// feeds its output into g. Then(f, g) is equivalent to Compose(g, f).
func Then[T, U, R any](f Function[T, U], g Function[U, R]) Function[T, R] {
	return func(v T) R {
		return g(f(v))
	}
}

// Identity returns a function that yields its argument unchanged.
func Identity[T any]() Function[T, T] {
	return func(v T) T {
		return v
	}
}

// Constant returns a supplier that always yields v.
func Constant[T any](v T) Supplier[T] {
	return func() T {
		return v
	}
}

// Chain composes same-type transformations left to right, in the manner of
// a sanitization pipeline: the returned operator applies each op in order.
func Chain[T any](ops ...UnaryOperator[T]) UnaryOperator[T] {
	return func(v T) T {
		result := v
		for _, op := range ops {
			result = op(result)
		}
		return result
	}
}
