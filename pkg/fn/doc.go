// Package fn declares generic functional types — Predicate, Supplier,
// Consumer, Function and friends — plus small composition helpers, so that
// call sites can name the role a function plays instead of spelling out its
// signature.
//
// The declared types are plain function types: any function with a matching
// signature converts implicitly, and values carry no runtime overhead.
//
// # Usage
//
//	import "github.com/dmitrymomot/typekit/pkg/fn"
//
//	var isAdult fn.Predicate[User] = func(u User) bool { return u.Age >= 18 }
//	var isActive fn.Predicate[User] = func(u User) bool { return u.Active }
//
//	eligible := isAdult.And(isActive)
//
//	normalize := fn.Chain(strings.TrimSpace, strings.ToLower)
//
// Predicate combinators short-circuit the way the && and || operators do.
package fn
