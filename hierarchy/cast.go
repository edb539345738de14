package hierarchy

import (
	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
	"github.com/veloxlabs/dexmodel/errors"
)

// IsAssignable reports whether a value of type t may be used where a value
// of type target is expected, per the single-superclass-plus-interfaces
// subtyping rule.
//
// An unindexed t is compatible with nothing but itself. This is a
// deliberate under-approximation: the index sees a strict subset of the
// runtime type universe, and "don't know" must be treated as "no".
func (idx *Index) IsAssignable(t, target *descriptor.Type) bool {
	return idx.assignable(t, target, nil)
}

func (idx *Index) assignable(t, target *descriptor.Type, path map[*descriptor.Type]struct{}) bool {
	if t == target {
		return true
	}
	cls, ok := idx.typeToClass[t]
	if !ok {
		return false
	}

	// Guard against a malformed inheritance cycle. Only the current
	// recursion path is tracked: revisiting a type that is still being
	// explored means a cycle, while re-reaching a type through a second
	// route (diamond interface inheritance) is legal.
	if path == nil {
		path = make(map[*descriptor.Type]struct{}, 8)
	}
	if _, on := path[t]; on {
		panic(errors.Cycle(errors.PhaseQuery, t.Name()))
	}
	path[t] = struct{}{}
	defer delete(path, t)

	if super := cls.SuperType; super != nil {
		if idx.assignable(super, target, path) {
			return true
		}
	}
	for _, intf := range cls.Interfaces {
		if idx.assignable(intf, target, path) {
			return true
		}
	}
	return false
}

// HasObjectRoot walks the superclass chain of cls upward through the index
// until the chain leaves the indexed universe, and reports whether the
// final unindexed ancestor is the well-known object root. A false result
// means the chain dead-ends at a missing intermediate class instead.
func (idx *Index) HasObjectRoot(cls *dex.Class) bool {
	var super *descriptor.Type
	seen := make(map[*dex.Class]struct{}, 8)
	for cls != nil {
		if _, revisit := seen[cls]; revisit {
			panic(errors.Cycle(errors.PhaseQuery, cls.Type.Name()))
		}
		seen[cls] = struct{}{}
		super = cls.SuperType
		cls = idx.typeToClass[super]
	}
	return super == idx.objectType
}
