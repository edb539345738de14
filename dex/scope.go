package dex

import (
	"github.com/veloxlabs/dexmodel/errors"
)

// Debug enables the consistency check in ApplyScopeChanges. Analysis
// passes may remove classes from a scope but never add them; the check
// verifies nothing in the surviving scope was lost during the rebuild.
var Debug bool

// BuildScope flattens a partitioned class collection into a single scope,
// preserving partition order and the relative order within each partition.
func BuildScope(dexen [][]*Class) []*Class {
	var scope []*Class
	for _, classes := range dexen {
		scope = append(scope, classes...)
	}
	return scope
}

// ApplyScopeChanges filters each partition of dexen in place, retaining
// only classes present in scope and preserving relative order. With Debug
// set it verifies every class in scope survived somewhere in the rebuilt
// partitioning and panics otherwise.
func ApplyScopeChanges(scope []*Class, dexen [][]*Class) {
	surviving := make(map[*Class]struct{}, len(scope))
	for _, cls := range scope {
		surviving[cls] = struct{}{}
	}

	for i, classes := range dexen {
		kept := classes[:0]
		for _, cls := range classes {
			if _, ok := surviving[cls]; ok {
				kept = append(kept, cls)
			}
		}
		dexen[i] = kept
	}

	if Debug {
		rebuilt := make(map[*Class]struct{})
		for _, classes := range dexen {
			for _, cls := range classes {
				rebuilt[cls] = struct{}{}
			}
		}
		for _, cls := range scope {
			if _, ok := rebuilt[cls]; !ok {
				panic(errors.Invariant(errors.PhaseScope,
					"class %s in scope but missing from rebuilt partitioning; scope changes cannot add classes",
					cls.Type.Name()))
			}
		}
	}
}
