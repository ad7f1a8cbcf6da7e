// Package typekit is a small library of type-safe helper constructs for
// application code.
//
// Each concern lives in its own self-contained package under pkg/ with no
// dependencies between them:
//
//   - pkg/optional — a generic value-or-absence container with functional
//     combinators (Map, FlatMap, Filter, Or, OrElse and friends)
//   - pkg/nominal — validation guards for nominal types: zero-cost
//     compile-time tags (`type Email string`) with a checked runtime
//     construction path, plus prebuilt validators for common cases
//   - pkg/fn — generic functional type declarations (Predicate, Supplier,
//     Consumer, Function, ...) and small composition helpers
//   - pkg/timer — context-aware one-shot and repeating timers and a
//     stopwatch
//
// Everything is pure and synchronous: values are immutable after
// construction, errors fail fast at the point of violation, and errors
// raised by caller-supplied functions propagate unchanged.
package typekit
