package dex

// AccessFlags is the Dex access-flag word carried by classes, methods,
// and fields.
type AccessFlags uint32

const (
	AccPublic               AccessFlags = 0x1
	AccPrivate              AccessFlags = 0x2
	AccProtected            AccessFlags = 0x4
	AccStatic               AccessFlags = 0x8
	AccFinal                AccessFlags = 0x10
	AccSynchronized         AccessFlags = 0x20
	AccVolatile             AccessFlags = 0x40
	AccBridge               AccessFlags = 0x40
	AccTransient            AccessFlags = 0x80
	AccVarargs              AccessFlags = 0x80
	AccNative               AccessFlags = 0x100
	AccInterface            AccessFlags = 0x200
	AccAbstract             AccessFlags = 0x400
	AccStrict               AccessFlags = 0x800
	AccSynthetic            AccessFlags = 0x1000
	AccAnnotation           AccessFlags = 0x2000
	AccEnum                 AccessFlags = 0x4000
	AccConstructor          AccessFlags = 0x10000
	AccDeclaredSynchronized AccessFlags = 0x20000
)

// VisibilityMask selects the visibility bits of an access word.
// Zero visibility bits mean package-private.
const VisibilityMask = AccPublic | AccPrivate | AccProtected

// MergeVisibility reduces two access words to the least-restrictive
// visibility: public wins outright; package-private (no visibility bits)
// wins over protected and private; protected wins over private.
// Non-visibility bits of the inputs are ignored.
func MergeVisibility(a, b AccessFlags) AccessFlags {
	a &= VisibilityMask
	b &= VisibilityMask
	if a&AccPublic != 0 || b&AccPublic != 0 {
		return AccPublic
	}
	if a == 0 || b == 0 {
		return 0
	}
	if a&AccProtected != 0 || b&AccProtected != 0 {
		return AccProtected
	}
	return AccPrivate
}
