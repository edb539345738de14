// Package footprint estimates the native linear-alloc cost of a class.
//
// The estimate is a relative-size heuristic, not a byte count: a fixed
// per-class vtable overhead (inflated for subclasses of well-known
// heavyweight framework bases, matched by name suffix), a vtable slot per
// virtual method, a fixed cost per declared method, and a fixed cost per
// instance field. Interfaces carry no vtable component.
//
// The penalty pattern table is compiled once at package initialization,
// so first use is race-free by construction.
package footprint
