// Package optional provides a generic value-or-absence container with
// functional combinators, for APIs where the zero value of a type is a
// legitimate value and cannot stand in for "no value".
//
// The package is centred around the immutable Optional type. An Optional is
// created with Empty, Of or OfNullable and then inspected or transformed
// through combinators that return new instances rather than mutating the
// receiver. Nil detection covers typed nils of nilable kinds (pointers,
// maps, slices, channels, functions, interfaces); values of other kinds
// have no absence marker and are always considered present.
//
// # Usage
//
//	import "github.com/dmitrymomot/typekit/pkg/optional"
//
//	func lookup(id string) optional.Optional[*User] {
//	    u := cache.Get(id) // may be nil
//	    return optional.OfNullable(u)
//	}
//
//	name := optional.Map(lookup("42"), func(u *User) string { return u.Name }).
//	    OrElse("anonymous")
//
// Mapping to a different value type goes through the package-level Map and
// FlatMap functions, since Go methods cannot introduce type parameters;
// same-type transformations can stay on the method chain.
//
// # Error Handling
//
// Contract violations by the calling code (a nil value passed to Of, a nil
// callback passed to a combinator) panic with a sentinel error, following
// the fail-fast convention for programmer errors. Callback arguments are
// validated before the held value is touched; IfPresentOrElse and Or
// validate all their arguments even on the branch that does not run.
// Absence on a value-returning path is an ordinary error: Get returns
// ErrNoSuchElement, and OrElseErr returns the supplier's error unchanged
// (or ErrNotThrowable when the supplier breaks its contract by returning
// nil). Errors produced by caller-supplied functions are never wrapped or
// suppressed.
//
// # Concurrency
//
// Optional values are immutable after construction and safe for
// unrestricted concurrent read access.
package optional
