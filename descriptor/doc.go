// Package descriptor models Dex type descriptors: interned string tokens
// encoding a type per a fixed grammar.
//
// # Grammar
//
//	V                     void
//	Z B S C I J F D       primitive scalars
//	L<name>;              object (fully qualified, '/'-separated)
//	[ ... one or more     array of the element that follows
//
// # Interning
//
// Descriptors are interned through a Pool. The pool owns every Type it
// hands out; the same spelling always yields the same pointer, so
// descriptor equality is pointer equality. Types are never mutated or
// removed for the pool's lifetime.
//
// Intern validates the grammar, so any *Type in circulation is structurally
// valid. Classification (Classify, Kind) therefore treats an unrecognized
// leading character as a fatal invariant violation, not a recoverable
// error.
package descriptor
