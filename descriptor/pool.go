package descriptor

import (
	"strings"
	"sync"

	"github.com/veloxlabs/dexmodel/errors"
)

// Type is an interned type descriptor. Two Types from the same Pool are
// equal iff they are the same pointer; never compare spellings.
type Type struct {
	pool *Pool
	name string
	kind Kind
}

// Name returns the descriptor spelling, e.g. "Ljava/lang/String;" or "[[I".
func (t *Type) Name() string { return t.name }

// Kind returns the structural category, cached at intern time.
func (t *Type) Kind() Kind { return t.kind }

// Shorty returns the one-character register-slot category of the type.
func (t *Type) Shorty() byte { return t.kind.Shorty() }

// IsPrimitive reports whether the type is one of the eight scalar types.
func (t *Type) IsPrimitive() bool { return t.kind.IsPrimitive() }

// IsArray reports whether the type is an array of any dimension.
func (t *Type) IsArray() bool { return t.kind == KindArray }

// ArrayLevel returns the number of array dimensions, 0 for non-arrays.
func (t *Type) ArrayLevel() int {
	level := 0
	for level < len(t.name) && t.name[level] == '[' {
		level++
	}
	return level
}

// ElementType strips the leading '[' run and returns the interned element
// type. The second result is false when t is not an array.
func (t *Type) ElementType() (*Type, bool) {
	if !t.IsArray() {
		return nil, false
	}
	elem := strings.TrimLeft(t.name, "[")
	return t.pool.mustIntern(elem), true
}

func (t *Type) String() string { return t.name }

// Pool is an interning arena for type descriptors. All Types referencing
// the pool remain valid for the pool's lifetime; nothing is ever removed.
// Intern and Lookup are safe for concurrent use.
type Pool struct {
	mu    sync.RWMutex
	types map[string]*Type

	object  *Type
	void    *Type
	boolean *Type
	intT    *Type
	long    *Type
	double  *Type
	str     *Type
	class   *Type
	enum    *Type
}

// NewPool creates a pool seeded with the well-known platform types.
func NewPool() *Pool {
	p := &Pool{types: make(map[string]*Type, 64)}
	p.object = p.mustIntern("Ljava/lang/Object;")
	p.void = p.mustIntern("V")
	p.boolean = p.mustIntern("Z")
	p.intT = p.mustIntern("I")
	p.long = p.mustIntern("J")
	p.double = p.mustIntern("D")
	p.str = p.mustIntern("Ljava/lang/String;")
	p.class = p.mustIntern("Ljava/lang/Class;")
	p.enum = p.mustIntern("Ljava/lang/Enum;")
	return p
}

// Well-known types, interned once at pool construction.

func (p *Pool) Object() *Type { return p.object }

func (p *Pool) Void() *Type { return p.void }

func (p *Pool) Boolean() *Type { return p.boolean }

func (p *Pool) Int() *Type { return p.intT }

func (p *Pool) Long() *Type { return p.long }

func (p *Pool) Double() *Type { return p.double }

func (p *Pool) StringType() *Type { return p.str }

func (p *Pool) ClassType() *Type { return p.class }

func (p *Pool) Enum() *Type { return p.enum }

// Intern returns the canonical Type for name, validating the descriptor
// grammar on first sight. Repeated interning of the same spelling returns
// the same pointer.
func (p *Pool) Intern(name string) (*Type, error) {
	p.mu.RLock()
	t, ok := p.types[name]
	p.mu.RUnlock()
	if ok {
		return t, nil
	}

	if err := Validate(name); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.types[name]; ok {
		return t, nil
	}
	t = &Type{pool: p, name: name, kind: Classify(name)}
	p.types[name] = t
	return t, nil
}

// MustIntern is Intern for descriptors known to be valid, such as literals.
// It panics on invalid input.
func (p *Pool) MustIntern(name string) *Type {
	return p.mustIntern(name)
}

func (p *Pool) mustIntern(name string) *Type {
	t, err := p.Intern(name)
	if err != nil {
		panic(errors.Invariant(errors.PhaseIntern, "interning invalid descriptor %q: %v", name, err))
	}
	return t
}

// Lookup returns the interned Type for name without creating one.
func (p *Pool) Lookup(name string) (*Type, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.types[name]
	return t, ok
}

// Size returns the number of interned descriptors.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.types)
}

// Validate checks name against the Dex type grammar: "V", one of
// "ZBSCIJFD", "Lname;", or one or more '[' followed by a non-void
// element. Void arrays are rejected.
func Validate(name string) error {
	if name == "" {
		return errors.InvalidDescriptor(errors.PhaseIntern, name, "empty descriptor")
	}

	elem := strings.TrimLeft(name, "[")
	isArray := len(elem) != len(name)
	if elem == "" {
		return errors.InvalidDescriptor(errors.PhaseIntern, name, "array with no element type")
	}

	switch elem[0] {
	case 'Z', 'B', 'S', 'C', 'I', 'J', 'F', 'D':
		if len(elem) != 1 {
			return errors.InvalidDescriptor(errors.PhaseIntern, name, "trailing characters after primitive code")
		}
		return nil
	case 'V':
		if len(elem) != 1 {
			return errors.InvalidDescriptor(errors.PhaseIntern, name, "trailing characters after void")
		}
		if isArray {
			return errors.InvalidDescriptor(errors.PhaseIntern, name, "array of void")
		}
		return nil
	case 'L':
		if len(elem) < 3 || elem[len(elem)-1] != ';' {
			return errors.InvalidDescriptor(errors.PhaseIntern, name, "object descriptor must be L<name>;")
		}
		return nil
	}
	return errors.InvalidDescriptor(errors.PhaseIntern, name, "unrecognized leading character")
}
