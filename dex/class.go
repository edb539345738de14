package dex

import (
	"github.com/veloxlabs/dexmodel/descriptor"
)

// Class is one loaded class. Instances are created by a loader, registered
// into a hierarchy index at most once, and never mutated afterwards.
type Class struct {
	// Type is the class's own descriptor.
	Type *descriptor.Type

	// SuperType is the superclass descriptor, nil only for the root
	// object type.
	SuperType *descriptor.Type

	// Interfaces are the directly implemented interface descriptors.
	Interfaces []*descriptor.Type

	// Access carries visibility and kind bits (interface, abstract, ...).
	Access AccessFlags

	// VirtualMethods occupy vtable slots; DirectMethods are constructors,
	// private, and static methods.
	VirtualMethods []*Method
	DirectMethods  []*Method

	// InstanceFields are the declared non-static fields.
	InstanceFields []*Field
}

// IsInterface reports whether the class is an interface.
func (c *Class) IsInterface() bool {
	return c.Access&AccInterface != 0
}

// Visibility returns only the visibility bits of the access word.
func (c *Class) Visibility() AccessFlags {
	return c.Access & VisibilityMask
}

// Field is a declared field.
type Field struct {
	Name   string
	Type   *descriptor.Type
	Access AccessFlags
}
