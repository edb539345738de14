// Package dexmodel provides an in-memory type model for Dalvik/Dex bytecode:
// interned type descriptors, class records, a queryable class hierarchy, and
// a heuristic linear-alloc size estimator.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	dexmodel/            Root package (this overview)
//	├── descriptor/      Type descriptor interning and classification
//	├── dex/             Class, method, and field records; access-flag algebra
//	├── hierarchy/       Class hierarchy index and cast resolution
//	├── footprint/       Linear-alloc size estimation
//	├── classset/        JSON class-set loading
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Intern descriptors, register classes, and query the hierarchy:
//
//	pool := descriptor.NewPool()
//	idx := hierarchy.New(pool)
//
//	for _, cls := range classes {
//	    idx.Register(cls)
//	}
//
//	ok := idx.IsAssignable(sub, base)
//
// # Type Descriptors
//
// Descriptors follow the Dex grammar: "V" (void), one of "ZBSCIJFD"
// (primitive scalars), "Lpkg/Name;" (object), or one or more "[" prefixes
// for arrays. Descriptors are interned through a Pool, so equality is
// pointer identity; the same spelling always yields the same *Type.
//
// # Thread Safety
//
// Pool interning and Index registration are safe for concurrent use.
// Index reads (Lookup, ChildrenOf, IsAssignable, AllDescendants) are not
// synchronized against concurrent registration: complete the registration
// phase before starting a concurrent query phase.
//
// # Visible Universe
//
// The index only knows the classes fed to it. Platform and library classes
// are routinely absent; lookups against them miss, and cast queries treat
// an unindexed source type as incompatible with everything but itself.
// Callers must treat "unknown" and "false" identically.
package dexmodel
