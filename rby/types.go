package rby

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Type uint8

const (
	TYPE_NORMAL Type = iota
	TYPE_FIGHTING
	TYPE_FLYING
	TYPE_POISON
	TYPE_GROUND
	TYPE_ROCK
	TYPE_BUG
	TYPE_GHOST
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_PSYCHIC
	TYPE_ICE
	TYPE_DRAGON
)

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_BUG      = "Bug"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_ICE      = "Ice"
	TYPENAME_DRAGON   = "Dragon"
)

// ALL_TYPES lists every Gen I type in cartridge order.
var ALL_TYPES = []Type{
	TYPE_NORMAL, TYPE_FIGHTING, TYPE_FLYING, TYPE_POISON, TYPE_GROUND,
	TYPE_ROCK, TYPE_BUG, TYPE_GHOST, TYPE_FIRE, TYPE_WATER,
	TYPE_GRASS, TYPE_ELECTRIC, TYPE_PSYCHIC, TYPE_ICE, TYPE_DRAGON,
}

var typeNames = [...]string{
	TYPENAME_NORMAL, TYPENAME_FIGHTING, TYPENAME_FLYING, TYPENAME_POISON, TYPENAME_GROUND,
	TYPENAME_ROCK, TYPENAME_BUG, TYPENAME_GHOST, TYPENAME_FIRE, TYPENAME_WATER,
	TYPENAME_GRASS, TYPENAME_ELECTRIC, TYPENAME_PSYCHIC, TYPENAME_ICE, TYPENAME_DRAGON,
}

var TYPE_MAP = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for i, name := range typeNames {
		m[name] = Type(i)
	}
	return m
}()

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", t)
	}

	return typeNames[t]
}

// ParseType looks up a type by name, ignoring case and surrounding whitespace.
func ParseType(name string) (Type, error) {
	// Casers keep state, so each call gets its own
	t, ok := TYPE_MAP[cases.Title(language.English).String(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return t, nil
}

// IsPhysical reports whether moves of this type use Attack/Defense.
// In Gen I the category comes from the type alone.
func (t Type) IsPhysical() bool {
	return t <= TYPE_GHOST
}

type Effectiveness uint8

const (
	NEUTRAL Effectiveness = iota
	WEAK
	RESIST
	IMMUNE
)

func (e Effectiveness) Ratio() Ratio {
	switch e {
	case WEAK:
		return Ratio{2, 1}
	case RESIST:
		return Ratio{1, 2}
	case IMMUNE:
		return Ratio{0, 1}
	default:
		return Ratio{1, 1}
	}
}

func (e Effectiveness) String() string {
	switch e {
	case WEAK:
		return "super effective"
	case RESIST:
		return "not very effective"
	case IMMUNE:
		return "no effect"
	default:
		return "neutral"
	}
}

// typeChart maps an attacking type to the defending types it does not hit neutrally.
// Follows the RBY chart, including the entries later generations fixed.
var typeChart = map[Type]map[Type]Effectiveness{
	TYPE_NORMAL: {
		TYPE_ROCK: RESIST,

		TYPE_GHOST: IMMUNE,
	},
	TYPE_FIGHTING: {
		TYPE_NORMAL: WEAK,
		TYPE_ROCK:   WEAK,
		TYPE_ICE:    WEAK,

		TYPE_FLYING:  RESIST,
		TYPE_POISON:  RESIST,
		TYPE_BUG:     RESIST,
		TYPE_PSYCHIC: RESIST,

		TYPE_GHOST: IMMUNE,
	},
	TYPE_FLYING: {
		TYPE_FIGHTING: WEAK,
		TYPE_BUG:      WEAK,
		TYPE_GRASS:    WEAK,

		TYPE_ROCK:     RESIST,
		TYPE_ELECTRIC: RESIST,
	},
	TYPE_POISON: {
		// Became neutral in Gen II
		TYPE_BUG:   WEAK,
		TYPE_GRASS: WEAK,

		TYPE_POISON: RESIST,
		TYPE_GROUND: RESIST,
		TYPE_ROCK:   RESIST,
		TYPE_GHOST:  RESIST,
	},
	TYPE_GROUND: {
		TYPE_POISON:   WEAK,
		TYPE_ROCK:     WEAK,
		TYPE_FIRE:     WEAK,
		TYPE_ELECTRIC: WEAK,

		TYPE_BUG:   RESIST,
		TYPE_GRASS: RESIST,

		TYPE_FLYING: IMMUNE,
	},
	TYPE_ROCK: {
		TYPE_FLYING: WEAK,
		TYPE_BUG:    WEAK,
		TYPE_FIRE:   WEAK,
		TYPE_ICE:    WEAK,

		TYPE_FIGHTING: RESIST,
		TYPE_GROUND:   RESIST,
	},
	TYPE_BUG: {
		// Bug hitting Poison is a separate entry from Poison hitting Bug
		TYPE_POISON:  WEAK,
		TYPE_GRASS:   WEAK,
		TYPE_PSYCHIC: WEAK,

		TYPE_FIGHTING: RESIST,
		TYPE_FLYING:   RESIST,
		TYPE_GHOST:    RESIST,
		TYPE_FIRE:     RESIST,
	},
	TYPE_GHOST: {
		TYPE_GHOST: WEAK,

		// The infamous "ghosts can't hit psychic" bug
		TYPE_NORMAL:  IMMUNE,
		TYPE_PSYCHIC: IMMUNE,
	},
	TYPE_FIRE: {
		TYPE_BUG:   WEAK,
		TYPE_GRASS: WEAK,
		TYPE_ICE:   WEAK,

		TYPE_ROCK:   RESIST,
		TYPE_FIRE:   RESIST,
		TYPE_WATER:  RESIST,
		TYPE_DRAGON: RESIST,
	},
	TYPE_WATER: {
		TYPE_GROUND: WEAK,
		TYPE_ROCK:   WEAK,
		TYPE_FIRE:   WEAK,

		TYPE_WATER:  RESIST,
		TYPE_GRASS:  RESIST,
		TYPE_DRAGON: RESIST,
	},
	TYPE_GRASS: {
		TYPE_GROUND: WEAK,
		TYPE_ROCK:   WEAK,
		TYPE_WATER:  WEAK,

		TYPE_FLYING: RESIST,
		TYPE_POISON: RESIST,
		TYPE_BUG:    RESIST,
		TYPE_FIRE:   RESIST,
		TYPE_GRASS:  RESIST,
		TYPE_DRAGON: RESIST,
	},
	TYPE_ELECTRIC: {
		TYPE_FLYING: WEAK,
		TYPE_WATER:  WEAK,

		TYPE_GRASS:    RESIST,
		TYPE_ELECTRIC: RESIST,
		TYPE_DRAGON:   RESIST,

		TYPE_GROUND: IMMUNE,
	},
	TYPE_PSYCHIC: {
		TYPE_FIGHTING: WEAK,
		TYPE_POISON:   WEAK,

		TYPE_PSYCHIC: RESIST,
	},
	TYPE_ICE: {
		TYPE_FLYING: WEAK,
		TYPE_GROUND: WEAK,
		TYPE_GRASS:  WEAK,
		TYPE_DRAGON: WEAK,

		// Fire did not resist ice until gen 2
		TYPE_WATER: RESIST,
		TYPE_ICE:   RESIST,
	},
	TYPE_DRAGON: {
		TYPE_DRAGON: WEAK,
	},
}

// Effectiveness of an attack of this type against a single defending type.
func (t Type) Effectiveness(defender Type) Effectiveness {
	if e, ok := typeChart[t][defender]; ok {
		return e
	}

	return NEUTRAL
}

// ApplyEffectiveness multiplies damage by the ratio against each defending type in turn,
// truncating after every step.
func ApplyEffectiveness(damage uint32, attack Type, defenders []Type) uint32 {
	for _, defender := range defenders {
		ratio := attack.Effectiveness(defender).Ratio()
		if ratio.IsZero() {
			return 0
		}

		damage = ratio.MulInt(damage)
	}

	return damage
}
