package dex

// Method is a declared method. Code is nil for abstract and native methods.
type Method struct {
	Name   string
	Access AccessFlags
	Code   *Code
}

// IsInit reports whether the method is an instance constructor.
func (m *Method) IsInit() bool {
	return m.Name == "<init>"
}

// IsClassInit reports whether the method is the static initializer.
func (m *Method) IsClassInit() bool {
	return m.Name == "<clinit>"
}

// Code is the register frame of a method body. The incoming arguments
// occupy the last InsSize registers of the frame.
type Code struct {
	RegistersSize uint16
	InsSize       uint16
}

// Invoke is a method invocation instruction, reduced to its source
// registers in argument order.
type Invoke struct {
	Sources []uint16
}

// PassesArgsThrough reports whether inv forwards all of the method's
// incoming arguments unchanged: the invoke's sources are exactly the
// argument window registers, in order. The last ignore incoming registers
// are excluded from the comparison.
func PassesArgsThrough(inv *Invoke, code *Code, ignore int) bool {
	regs := int(code.RegistersSize)
	ins := int(code.InsSize)
	if len(inv.Sources) != ins-ignore {
		return false
	}
	for i, src := range inv.Sources {
		if int(src) != regs-ins+i {
			return false
		}
	}
	return true
}
