package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseIntern   Phase = "intern"   // descriptor interning
	PhaseDecode   Phase = "decode"   // descriptor classification
	PhaseLoad     Phase = "load"     // class-set loading
	PhaseRegister Phase = "register" // hierarchy registration
	PhaseQuery    Phase = "query"    // hierarchy queries
	PhaseEstimate Phase = "estimate" // footprint estimation
	PhaseScope    Phase = "scope"    // scope rebuild
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidDescriptor Kind = "invalid_descriptor"
	KindInvalidData       Kind = "invalid_data"
	KindInvalidAccess     Kind = "invalid_access"
	KindFieldMissing      Kind = "field_missing"
	KindDuplicateClass    Kind = "duplicate_class"
	KindNotFound          Kind = "not_found"
	KindCycleDetected     Kind = "cycle_detected"
	KindInvariant         Kind = "invariant"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Descriptor string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Descriptor != "" {
		b.WriteString(": type ")
		b.WriteString(e.Descriptor)
	}

	if e.Detail != "" {
		if e.Descriptor != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Descriptor sets the type descriptor the error refers to
func (b *Builder) Descriptor(d string) *Builder {
	b.err.Descriptor = d
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidDescriptor creates an error for a descriptor that does not follow
// the Dex type grammar
func InvalidDescriptor(phase Phase, descriptor, detail string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindInvalidDescriptor,
		Descriptor: descriptor,
		Detail:     detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidAccess creates an error for an unrecognized access flag name
func InvalidAccess(path []string, flag string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidAccess,
		Path:   path,
		Detail: fmt.Sprintf("unknown access flag %q", flag),
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// DuplicateClass creates an error for a class registered under a descriptor
// that already maps to a different class
func DuplicateClass(descriptor string) *Error {
	return &Error{
		Phase:      PhaseRegister,
		Kind:       KindDuplicateClass,
		Descriptor: descriptor,
		Detail:     "class already registered",
	}
}

// Cycle creates an error for a superclass cycle discovered during traversal.
// Cycles indicate a corrupted class universe; callers panic with this error.
func Cycle(phase Phase, descriptor string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindCycleDetected,
		Descriptor: descriptor,
		Detail:     "superclass cycle",
	}
}

// Invariant creates an internal invariant violation. These are fatal:
// callers panic with the returned error rather than propagating it.
func Invariant(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
