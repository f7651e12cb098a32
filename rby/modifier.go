package rby

import "fmt"

const (
	MIN_STAGE = -6
	MAX_STAGE = 6
)

// Modifier is a stat stage between -6 and +6. The zero value is neutral.
//
// Arithmetic on a Modifier saturates at the boundaries instead of wrapping.
type Modifier struct {
	stage int8
}

func NewModifier(stage int) Modifier {
	return Modifier{stage: int8(max(MIN_STAGE, min(MAX_STAGE, stage)))}
}

func (m Modifier) Stage() int {
	return int(m.stage)
}

// Ratio is the stat multiplier for this stage. The negative stages come from a
// lookup table on the cartridge whose entries were rounded to hundredths, so
// they are not reciprocals of the positive side.
func (m Modifier) Ratio() Ratio {
	switch m.stage {
	case -6:
		return Ratio{1, 4}
	case -5:
		return Ratio{28, 100}
	case -4:
		return Ratio{33, 100}
	case -3:
		return Ratio{40, 100}
	case -2:
		return Ratio{1, 2}
	case -1:
		return Ratio{66, 100}
	default:
		return Ratio{uint32(m.stage) + 2, 2}
	}
}

// Apply scales a raw stat by this stage, capping the result at MAX_STAT.
func (m Modifier) Apply(stat uint16) uint16 {
	return uint16(min(m.Ratio().MulInt(uint32(stat)), MAX_STAT))
}

func (m Modifier) Add(delta int) Modifier {
	return NewModifier(int(m.stage) + delta)
}

func (m Modifier) Combine(other Modifier) Modifier {
	return m.Add(int(other.stage))
}

func (m Modifier) String() string {
	return fmt.Sprintf("%+d", m.stage)
}
