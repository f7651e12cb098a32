package rby

import "fmt"

type EffectKind uint8

const (
	EFFECT_NORMAL EffectKind = iota
	// Attacker takes a fraction of the damage dealt
	EFFECT_RECOIL
	// Explosion and Self-Destruct
	EFFECT_SELF_KO
	// Slash, Karate Chop, Razor Leaf, Crabhammer
	EFFECT_HIGH_CRIT
)

// MoveEffect is the extra behaviour attached to a move.
// RecoilDivider is only set for EFFECT_RECOIL and is never zero there.
type MoveEffect struct {
	Kind          EffectKind
	RecoilDivider uint8
}

func NormalEffect() MoveEffect {
	return MoveEffect{Kind: EFFECT_NORMAL}
}

// RecoilEffect makes the attacker take 1/divider of the damage it deals. Panics on a zero divider.
func RecoilEffect(divider uint8) MoveEffect {
	if divider == 0 {
		panic(fmt.Errorf("%w: recoil divider must not be zero", ErrInvalidMove))
	}

	return MoveEffect{Kind: EFFECT_RECOIL, RecoilDivider: divider}
}

func SelfKOEffect() MoveEffect {
	return MoveEffect{Kind: EFFECT_SELF_KO}
}

func HighCritEffect() MoveEffect {
	return MoveEffect{Kind: EFFECT_HIGH_CRIT}
}

func (e MoveEffect) String() string {
	switch e.Kind {
	case EFFECT_RECOIL:
		return fmt.Sprintf("recoil(1/%d)", e.RecoilDivider)
	case EFFECT_SELF_KO:
		return "self-ko"
	case EFFECT_HIGH_CRIT:
		return "high-crit"
	default:
		return "normal"
	}
}

// Move is an attack as the cartridge stores it. Moves are plain values and never change.
type Move struct {
	Name string
	// Zero means the move does no damage
	Power uint8
	// Accuracy on a 0-255 scale. Zero means the move never misses
	Accuracy uint8
	Effect   MoveEffect
	Type     Type
}

var struggle = Move{
	Name:     "struggle",
	Power:    50,
	Accuracy: 255,
	Effect:   MoveEffect{Kind: EFFECT_RECOIL, RecoilDivider: 2},
	Type:     TYPE_NORMAL,
}

// Struggle is the fallback move used when nothing else can be selected.
func Struggle() Move {
	return struggle
}

func (m Move) IsDamaging() bool {
	return m.Power > 0
}

// Hits rolls whether the move connects.
//
// The roll is compared strictly, so a 255 accuracy move at neutral stages still
// misses on a roll of 255 (the 1/256 miss).
func (m Move) Hits(rng Source, accuracy Modifier, evasion Modifier) bool {
	if m.Accuracy == 0 {
		return true
	}

	threshold := accuracy.Ratio().MulInt(uint32(m.Accuracy))
	threshold = evasion.Ratio().DivInt(threshold)
	r := uint32(rng.IntN(0, 256))

	return threshold > r
}

// criticalThreshold is out of 256. Focus Energy and Dire Hit are not modelled.
func criticalThreshold(baseSpeed uint16, effect MoveEffect) uint32 {
	t := uint32(baseSpeed) / 2
	if effect.Kind == EFFECT_HIGH_CRIT {
		t *= 4
	}

	return min(t, 255)
}

// IsCritical rolls for a critical hit using the RBY formula, which depends on
// the attacker's base speed rather than its actual speed.
func (m Move) IsCritical(rng Source, attacker *BattleState) bool {
	t := criticalThreshold(attacker.Pokemon().BaseStats.Get(STAT_SPEED), m.Effect)
	r := uint32(rng.IntN(0, 256))

	return r < t
}

// Recoil is the damage the attacker takes after dealing damageDealt.
// Only recoil moves return true, and they always deal at least 1.
func (m Move) Recoil(damageDealt uint16) (uint16, bool) {
	if m.Effect.Kind != EFFECT_RECOIL {
		return 0, false
	}

	return max(damageDealt/uint16(m.Effect.RecoilDivider), 1), true
}
