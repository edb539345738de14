package hierarchy

import (
	"sync"

	"go.uber.org/zap"

	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
	"github.com/veloxlabs/dexmodel/errors"
)

// Index maps every registered class to its position in the inheritance
// forest. Construct one per analysis run, register every loaded class,
// then query it.
//
// Register is the only mutating operation and is safe for concurrent use.
// Reads are not synchronized against registration: finish registering
// before querying from other goroutines.
type Index struct {
	mu          sync.Mutex
	typeToClass map[*descriptor.Type]*dex.Class
	children    map[*descriptor.Type][]*descriptor.Type
	objectType  *descriptor.Type
}

// New creates an empty index. The pool supplies the well-known object
// root descriptor used by HasObjectRoot.
func New(pool *descriptor.Pool) *Index {
	return &Index{
		typeToClass: make(map[*descriptor.Type]*dex.Class, 1024),
		children:    make(map[*descriptor.Type][]*descriptor.Type, 256),
		objectType:  pool.Object(),
	}
}

// Register adds cls to the index. The first registration of a descriptor
// wins; registering the same class again is a no-op, so full passes over
// a class collection can rebuild the index idempotently. A class with no
// superclass is never recorded as anyone's child.
func (idx *Index) Register(cls *dex.Class) {
	_ = idx.RegisterStrict(cls)
}

// RegisterStrict is Register for callers that own the whole registration
// pass and expect every descriptor exactly once. Re-registering the same
// class is still a no-op; a different class under an already-registered
// descriptor returns a duplicate-class error and leaves the index
// unchanged.
func (idx *Index) RegisterStrict(cls *dex.Class) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	t := cls.Type
	if existing, ok := idx.typeToClass[t]; ok {
		if existing == cls {
			return nil
		}
		return errors.DuplicateClass(t.Name())
	}
	idx.typeToClass[t] = cls

	if super := cls.SuperType; super != nil {
		idx.children[super] = append(idx.children[super], t)
	}

	Logger().Debug("registered class",
		zap.String("type", t.Name()),
		zap.Bool("interface", cls.IsInterface()))
	return nil
}

// Lookup returns the class registered for t. Absence is a normal outcome:
// platform and library classes are typically outside the indexed set.
func (idx *Index) Lookup(t *descriptor.Type) (*dex.Class, bool) {
	cls, ok := idx.typeToClass[t]
	return cls, ok
}

// Size returns the number of registered classes.
func (idx *Index) Size() int {
	return len(idx.typeToClass)
}

// ChildrenOf returns the direct subclass descriptors of t in registration
// order, or nil if none were registered. Callers must not mutate the
// returned slice.
func (idx *Index) ChildrenOf(t *descriptor.Type) []*descriptor.Type {
	return idx.children[t]
}

// AllDescendants returns every transitive subclass descriptor of t in
// pre-order: each direct child followed by its own subtree, siblings in
// registration order. A well-formed hierarchy is a forest; encountering
// the same descriptor twice means a superclass cycle, which is fatal.
func (idx *Index) AllDescendants(t *descriptor.Type) []*descriptor.Type {
	var out []*descriptor.Type
	seen := map[*descriptor.Type]struct{}{t: {}}
	idx.appendDescendants(t, &out, seen)
	return out
}

func (idx *Index) appendDescendants(t *descriptor.Type, out *[]*descriptor.Type, seen map[*descriptor.Type]struct{}) {
	for _, child := range idx.children[t] {
		if _, ok := seen[child]; ok {
			panic(errors.Cycle(errors.PhaseQuery, child.Name()))
		}
		seen[child] = struct{}{}
		*out = append(*out, child)
		idx.appendDescendants(child, out, seen)
	}
}
