package descriptor

import (
	"github.com/veloxlabs/dexmodel/errors"
)

// Kind is the structural category of a type descriptor.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindShort:   "short",
	KindChar:    "char",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is one of the eight scalar categories.
// Void, Object, and Array are not primitive.
func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// Shorty collapses k to its one-character register-slot category.
// Arrays share the Object bucket 'L'.
func (k Kind) Shorty() byte {
	switch k {
	case KindVoid:
		return 'V'
	case KindBoolean:
		return 'Z'
	case KindByte:
		return 'B'
	case KindShort:
		return 'S'
	case KindChar:
		return 'C'
	case KindInt:
		return 'I'
	case KindLong:
		return 'J'
	case KindFloat:
		return 'F'
	case KindDouble:
		return 'D'
	case KindObject, KindArray:
		return 'L'
	}
	panic(errors.Invariant(errors.PhaseDecode, "shorty of unknown kind %d", k))
}

// Classify determines the kind of a descriptor from its first character.
// A leading '[' is Array regardless of what follows. Classify is total
// over valid descriptors; any other leading character means the caller
// holds a descriptor that never went through validated interning, which
// is fatal.
func Classify(name string) Kind {
	if name == "" {
		panic(errors.Invariant(errors.PhaseDecode, "empty descriptor"))
	}
	switch name[0] {
	case 'V':
		return KindVoid
	case 'Z':
		return KindBoolean
	case 'B':
		return KindByte
	case 'S':
		return KindShort
	case 'C':
		return KindChar
	case 'I':
		return KindInt
	case 'J':
		return KindLong
	case 'F':
		return KindFloat
	case 'D':
		return KindDouble
	case 'L':
		return KindObject
	case '[':
		return KindArray
	}
	panic(errors.Invariant(errors.PhaseDecode, "descriptor %q has unrecognized leading character", name))
}
