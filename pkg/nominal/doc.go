// Package nominal provides runtime validation guards for nominal types —
// defined types such as `type Email string` that the compiler keeps
// incompatible with their underlying type at zero runtime cost.
//
// A Guard wraps a single pure validator and exposes four views of it:
// Is for error-free narrowing, Assert for a nil-or-ValidationError check,
// Identity for validate-and-return construction, and Must for panicking
// construction of values known valid at authoring time. Because every view
// shares the one validator closure, they can never disagree about an input.
//
// # Usage
//
//	import "github.com/dmitrymomot/typekit/pkg/nominal"
//
//	type Email string
//
//	var emailGuard = nominal.Email[Email]()
//
//	func register(raw string) error {
//	    email, err := emailGuard.Identity(Email(raw))
//	    if err != nil {
//	        return err
//	    }
//	    // email is a validated Email from here on
//	    ...
//	}
//
// Custom validators come in two flavours. New takes a func(T) error whose
// message becomes the rejection reason; NewPredicate takes a plain
// func(T) bool and rejections get the synthesized "invalid value <v>"
// message:
//
//	type Port int
//
//	var portGuard = nominal.New(func(p Port) error {
//	    if p < 1 || p > 65535 {
//	        return fmt.Errorf("port %d out of range", p)
//	    }
//	    return nil
//	})
//
// The explicit conversion Email(raw) is the deliberate unsafe escape hatch:
// nothing stops it at compile time, so treat unvalidated conversions the
// way you would treat unsafe casts.
//
// # Error Handling
//
// Assert, Identity and Must report rejections as *ValidationError whose
// message is exactly the validator's reason text. A validator's own error
// value stays reachable through errors.Is and errors.As. Errors raised by
// panicking validators propagate unchanged; the package never recovers or
// wraps them.
//
// # Concurrency
//
// Guards are immutable after construction and safe for concurrent use,
// provided the wrapped validator is.
package nominal
