// Package dex defines the class, method, and field records consumed by the
// hierarchy index, along with the access-flag algebra shared by class-merge
// and visibility analyses.
//
// Records are plain data: a loader constructs them, the hierarchy index
// and analysis passes read them, and nothing mutates them after
// construction. The package also carries two small analysis helpers that
// need no hierarchy access: PassesArgsThrough, which checks whether an
// invoke forwards its incoming arguments unchanged, and the scope
// build/rebuild pair used to commit class-removal decisions back to a
// partitioned class collection.
package dex
