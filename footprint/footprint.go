package footprint

import (
	"regexp"

	"github.com/veloxlabs/dexmodel/dex"
)

// Cost constants, kept bug-compatible with DalvikStatsTool's guesses.
// Units are abstract linear-alloc cost, not bytes.
const (
	objectVtable      = 48
	methodSize        = 52
	instanceFieldSize = 16
	vtableSlotSize    = 4
)

type penaltyPattern struct {
	re      *regexp.Regexp
	penalty int
}

// Heavyweight framework base classes drag a large inherited vtable into
// every subclass; a name (or superclass name) matching one of these
// replaces the default vtable overhead. First match wins.
var penaltyPatterns = []penaltyPattern{
	{regexp.MustCompile(`Layout;$`), 1500},
	{regexp.MustCompile(`View;$`), 1500},
	{regexp.MustCompile(`ViewGroup;$`), 1800},
	{regexp.MustCompile(`Activity;$`), 1500},
}

func matchPenalty(name string) (int, bool) {
	for _, p := range penaltyPatterns {
		if p.re.MatchString(name) {
			return p.penalty, true
		}
	}
	return 0, false
}

// Estimate returns the heuristic linear-alloc cost of cls. The estimate
// is a vtable guess for non-interfaces (the own or superclass name may
// trigger a framework penalty instead of the default overhead), plus
// per-method and per-instance-field costs. All arithmetic is integral
// and non-negative.
func Estimate(cls *dex.Class) int {
	size := 0

	if !cls.IsInterface() {
		vtablePenalty := objectVtable
		if p, ok := matchPenalty(cls.Type.Name()); ok {
			vtablePenalty = p
		} else if cls.SuperType != nil {
			if p, ok := matchPenalty(cls.SuperType.Name()); ok {
				vtablePenalty = p
			}
		}
		size += vtablePenalty
		size += len(cls.VirtualMethods) * vtableSlotSize
	}

	size += len(cls.DirectMethods) * methodSize
	size += len(cls.VirtualMethods) * methodSize
	size += len(cls.InstanceFields) * instanceFieldSize
	return size
}
