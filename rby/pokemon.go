package rby

import (
	"fmt"

	"github.com/samber/lo"
)

// Species is the per-dex-entry data every individual Pokemon of that kind shares.
type Species struct {
	PokedexNumber uint
	Name          string
	BaseStats     StatSet
	Types         []Type
}

func (s Species) HasType(wanted Type) bool {
	return lo.Contains(s.Types, wanted)
}

// Pokemon is a single battle participant. It is built once and never mutated
// during a battle; everything that changes lives in BattleState.
type Pokemon struct {
	Name      string
	Level     uint8
	BaseStats StatSet
	IVs       StatSet
	EVs       StatSet
	Types     []Type
}

// Validate reports the first way p breaks the Gen I rules, if any.
// EVs need no check since every uint16 is a legal EV.
func (p Pokemon) Validate() error {
	if p.Level < 1 || p.Level > MAX_LEVEL {
		return fmt.Errorf("%w: level %d outside of 1-%d", ErrInvalidPokemon, p.Level, MAX_LEVEL)
	}

	for i, iv := range p.IVs {
		if iv > MAX_IV {
			return fmt.Errorf("%w: %s IV %d above %d", ErrInvalidPokemon, Stat(i), iv, MAX_IV)
		}
	}

	if len(p.Types) < 1 || len(p.Types) > 2 {
		return fmt.Errorf("%w: %d types, expected 1 or 2", ErrInvalidPokemon, len(p.Types))
	}

	if len(lo.Uniq(p.Types)) != len(p.Types) {
		return fmt.Errorf("%w: duplicate type %s", ErrInvalidPokemon, p.Types[0])
	}

	for _, t := range p.Types {
		if int(t) >= len(ALL_TYPES) {
			return fmt.Errorf("%w: %w %d", ErrInvalidPokemon, ErrUnknownType, t)
		}
	}

	return nil
}

// RawStat calculates the stat value from level, base stat, IV and EV,
// ignoring any in-battle stage. Every step truncates, in cartridge order.
//
// Accuracy and evasion have no raw value; asking for them panics.
func (p Pokemon) RawStat(stat Stat) uint16 {
	slot := statSlot(stat)

	l := uint32(p.Level)
	ev := uint32(p.EVs[slot])
	bs := uint32(p.BaseStats[slot])
	iv := uint32(p.IVs[slot])

	s := isqrt(max(ev, 1)-1) + 1
	s = min(s/4, 63)
	s += 2 * (iv + bs)

	bonus := uint32(5)
	if stat == STAT_HP {
		bonus = l + 10
	}

	return uint16(s*l/100 + bonus)
}

// RawStats calculates all five raw stats at once.
func (p Pokemon) RawStats() StatSet {
	var stats StatSet
	for i := range stats {
		stats[i] = p.RawStat(Stat(i))
	}

	return stats
}

func (p Pokemon) HasType(wanted Type) bool {
	return lo.Contains(p.Types, wanted)
}
