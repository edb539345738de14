// Package errors provides structured error types for the dexmodel library.
//
// Errors carry a Phase (where in processing they occurred) and a Kind
// (what went wrong), plus optional context: the type descriptor involved,
// a field path for loader errors, and a wrapped cause.
//
// # Two Failure Classes
//
// Expected absence (a descriptor that was never registered, a class with
// no children) is not an error at all; query APIs return (zero, false)
// for those. Errors from this package fall into two groups:
//
//   - Recoverable input problems (loader validation, malformed class
//     sets): returned as values, aggregated with multierr by callers.
//
//   - Invariant violations (malformed interned descriptors, superclass
//     cycles, lost classes in scope rebuild): the indexed universe is
//     inconsistent and no query result can be trusted, so call sites
//     panic with the *Error rather than returning it.
//
// # Usage
//
// Construct errors with the convenience constructors:
//
//	err := errors.InvalidDescriptor(errors.PhaseLoad, "Qfoo;", "unrecognized leading character")
//
// Or with the builder for more context:
//
//	err := errors.New(errors.PhaseLoad, errors.KindInvalidData).
//	    Path("classes", "3", "super").
//	    Detail("super of an interface must be the object type").
//	    Build()
//
// Errors support errors.Is matching on (Phase, Kind) pairs and unwrap
// their cause.
package errors
