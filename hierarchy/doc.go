// Package hierarchy maintains the class hierarchy index: the mapping from
// each registered descriptor to its class record and the superclass-derived
// adjacency between classes.
//
// # Lifecycle
//
// An Index is owned by one analysis run: construct it with New, feed every
// loaded class to Register (from any number of goroutines, in any order),
// then query it. Registration order only affects the order within each
// sibling list reported by ChildrenOf.
//
// # Queries
//
//	Lookup          descriptor -> class record
//	ChildrenOf      direct subclasses, registration order
//	AllDescendants  transitive subclasses, pre-order
//	IsAssignable    cast compatibility per the subtyping rule
//	HasObjectRoot   whether a superclass chain closes at the object root
//
// # Synchronization
//
// Register takes the index lock; all reads are lock-free and must not run
// concurrently with registration. The intended pattern is a registration
// phase, a barrier (errgroup wait, WaitGroup, channel close), then a query
// phase that may be freely parallel.
//
// # Partial Universe
//
// The index only contains what was registered. Lookup misses, empty child
// lists, and IsAssignable returning false for unindexed types are all
// normal outcomes, not errors. The one fatal condition is a superclass
// cycle: any traversal that revisits a type panics with a cycle error,
// since a cyclic universe cannot answer any query correctly.
package hierarchy
