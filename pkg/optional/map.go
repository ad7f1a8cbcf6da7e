package optional

// Map applies mapper to the value held by o and wraps the result in an
// Optional of the target type; a nil result yields an empty Optional.
// If o is empty, mapper is not invoked. This is the cross-type counterpart
// of the Map method, which Go method type parameters cannot express.
// It panics with ErrNilFunction if mapper is nil.
func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if mapper == nil {
		panic(ErrNilFunction)
	}
	if !o.present {
		return Optional[U]{}
	}
	return OfNullable(mapper(o.value))
}

// FlatMap applies mapper to the value held by o and returns its result
// directly, without double-wrapping. If o is empty, mapper is not invoked.
// It panics with ErrNilFunction if mapper is nil.
func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if mapper == nil {
		panic(ErrNilFunction)
	}
	if !o.present {
		return Optional[U]{}
	}
	return mapper(o.value)
}
