package hierarchy

import (
	"testing"

	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
)

// buildChain registers a 4-level chain with one interface branch:
//
//	object <- A <- B <- C <- D
//	             B implements ISub; ISub extends IBase
func buildChain(t *testing.T) (*descriptor.Pool, *Index) {
	t.Helper()
	pool := descriptor.NewPool()
	idx := New(pool)

	idx.Register(class(pool, "La;", "Ljava/lang/Object;"))
	idx.Register(class(pool, "Lb;", "La;", "Lisub;"))
	idx.Register(class(pool, "Lc;", "Lb;"))
	idx.Register(class(pool, "Ld;", "Lc;"))

	isub := class(pool, "Lisub;", "Ljava/lang/Object;", "Libase;")
	isub.Access = dex.AccPublic | dex.AccInterface | dex.AccAbstract
	idx.Register(isub)

	ibase := class(pool, "Libase;", "Ljava/lang/Object;")
	ibase.Access = dex.AccPublic | dex.AccInterface | dex.AccAbstract
	idx.Register(ibase)
	return pool, idx
}

func TestIsAssignableReflexive(t *testing.T) {
	pool, idx := buildChain(t)

	for _, name := range []string{"La;", "Ld;", "Lisub;", "I", "[I", "Lnever/Registered;"} {
		d := pool.MustIntern(name)
		if !idx.IsAssignable(d, d) {
			t.Errorf("IsAssignable(%s, %s) = false, want true", name, name)
		}
	}
}

func TestIsAssignableChain(t *testing.T) {
	pool, idx := buildChain(t)

	tests := []struct {
		src, dst string
		want     bool
	}{
		{"Lb;", "La;", true},
		{"Ld;", "La;", true},  // transitive superclass
		{"Ld;", "Lb;", true},
		{"Ld;", "Ljava/lang/Object;", true},
		{"La;", "Lb;", false}, // wrong direction
		{"La;", "Ld;", false},
		{"Lb;", "Lc;", false},
		{"Lb;", "Lisub;", true},  // direct interface
		{"Lb;", "Libase;", true}, // interface of an interface
		{"Ld;", "Lisub;", true},  // interface via superclass chain
		{"Ld;", "Libase;", true},
		{"La;", "Lisub;", false},
		{"Lisub;", "Libase;", true},
		{"Libase;", "Lisub;", false},
		{"Lb;", "Lunrelated;", false},
	}

	for _, tc := range tests {
		t.Run(tc.src+"->"+tc.dst, func(t *testing.T) {
			src := pool.MustIntern(tc.src)
			dst := pool.MustIntern(tc.dst)
			if got := idx.IsAssignable(src, dst); got != tc.want {
				t.Errorf("IsAssignable(%s, %s) = %v, want %v", tc.src, tc.dst, got, tc.want)
			}
		})
	}
}

func TestIsAssignableUnindexedSource(t *testing.T) {
	pool, idx := buildChain(t)

	// A library class the index never saw: compatible with itself only,
	// even against the object root.
	lib := pool.MustIntern("Landroid/view/View;")
	if idx.IsAssignable(lib, pool.Object()) {
		t.Error("unindexed type reported assignable to object")
	}
	if !idx.IsAssignable(lib, lib) {
		t.Error("unindexed type not assignable to itself")
	}
}

func TestIsAssignableDiamondInterfaces(t *testing.T) {
	pool := descriptor.NewPool()
	idx := New(pool)

	// Diamond: Limpl; implements Left and Right, both extending Itop.
	// Reaching Itop twice through different routes is legal.
	idx.Register(class(pool, "Litop;", "Ljava/lang/Object;"))
	idx.Register(class(pool, "Lleft;", "Ljava/lang/Object;", "Litop;"))
	idx.Register(class(pool, "Lright;", "Ljava/lang/Object;", "Litop;"))
	idx.Register(class(pool, "Limpl;", "Ljava/lang/Object;", "Lleft;", "Lright;"))

	impl := pool.MustIntern("Limpl;")
	if !idx.IsAssignable(impl, pool.MustIntern("Litop;")) {
		t.Error("diamond apex not reachable")
	}
	if idx.IsAssignable(impl, pool.MustIntern("Lelsewhere;")) {
		t.Error("unrelated target reported assignable")
	}
}

func TestIsAssignableCyclePanics(t *testing.T) {
	pool := descriptor.NewPool()
	idx := New(pool)

	idx.Register(class(pool, "La;", "Lb;"))
	idx.Register(class(pool, "Lb;", "La;"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on superclass cycle")
		}
	}()
	idx.IsAssignable(pool.MustIntern("La;"), pool.MustIntern("Lx;"))
}

func TestHasObjectRoot(t *testing.T) {
	pool, idx := buildChain(t)

	// Chain closed at the object root.
	d, _ := idx.Lookup(pool.MustIntern("Ld;"))
	if !idx.HasObjectRoot(d) {
		t.Error("closed chain reported as not reaching the object root")
	}

	// Chain with a hole: Lorphan; extends a class that was never
	// registered and is not the object root.
	orphan := class(pool, "Lorphan;", "Lmissing/Super;")
	idx.Register(orphan)
	if idx.HasObjectRoot(orphan) {
		t.Error("chain with a missing intermediate reported as closed")
	}
}
