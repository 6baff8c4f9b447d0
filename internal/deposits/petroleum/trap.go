package petroleum

import (
	"fmt"
	"strings"
)

// Trap identifies the structural model that concentrates hydrocarbons
// within one reservoir.
type Trap int

const (
	// TrapAnticline domes the reservoir over a structural high.
	TrapAnticline Trap = iota
	// TrapFault banks the reservoir against a sealing fault plane.
	TrapFault
	// TrapStratigraphic pinches the reservoir out inside a rock unit.
	TrapStratigraphic
)

const trapCount = int(TrapStratigraphic) + 1

var trapNames = [...]string{
	TrapAnticline:     "anticline",
	TrapFault:         "fault_trap",
	TrapStratigraphic: "stratigraphic",
}

// basePoints is the nominal point yield per trap before the efficiency
// multiplier is applied.
var basePoints = [...]int{
	TrapAnticline:     100,
	TrapFault:         80,
	TrapStratigraphic: 60,
}

// String returns the trap name used in reports and config maps.
func (t Trap) String() string {
	if t < 0 || int(t) >= trapCount {
		return fmt.Sprintf("trap(%d)", int(t))
	}
	return trapNames[t]
}

// BasePoints returns the nominal point count for the trap.
func (t Trap) BasePoints() int {
	if t < 0 || int(t) >= trapCount {
		return 0
	}
	return basePoints[t]
}

// ParseTrap resolves a trap name to its enum value.
func ParseTrap(s string) (Trap, error) {
	for i := 0; i < trapCount; i++ {
		if strings.EqualFold(s, trapNames[i]) {
			return Trap(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trap type %q", s)
}

// Traps lists every trap type in declaration order.
func Traps() []Trap {
	out := make([]Trap, trapCount)
	for i := range out {
		out[i] = Trap(i)
	}
	return out
}
