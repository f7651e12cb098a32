package rby

import "fmt"

type Stat int

const (
	STAT_HP Stat = iota
	STAT_ATTACK
	STAT_DEFENSE
	STAT_SPECIAL
	STAT_SPEED
	// Accuracy and evasion only exist as stages, never as raw values
	STAT_ACCURACY
	STAT_EVASION
)

const (
	MAX_IV    = 0xf
	MAX_EV    = 0xffff
	MAX_LEVEL = 100
	// Largest value a stage boost may push a stat to
	MAX_STAT = 999
)

// StatSet holds one value per combat stat, indexed with statSlot.
type StatSet [5]uint16

var (
	PERFECT_IVS = StatSet{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV}
	PERFECT_EVS = StatSet{MAX_EV, MAX_EV, MAX_EV, MAX_EV, MAX_EV}
)

var statNames = [...]string{"hp", "attack", "defense", "special", "speed", "accuracy", "evasion"}

func (s Stat) String() string {
	if s < 0 || int(s) >= len(statNames) {
		return fmt.Sprintf("stat(%d)", int(s))
	}

	return statNames[s]
}

// IsCombat reports whether the stat has a raw value (everything but accuracy and evasion).
func (s Stat) IsCombat() bool {
	return s >= STAT_HP && s <= STAT_SPEED
}

// statSlot maps a combat stat onto its StatSet index.
// Asking for accuracy or evasion is a programming error and panics.
func statSlot(stat Stat) int {
	if !stat.IsCombat() {
		panic(fmt.Sprintf("%s has no raw stat value", stat))
	}

	return int(stat)
}

// stageSlot maps any stat, including accuracy and evasion, onto a stage index.
func stageSlot(stat Stat) int {
	if stat < STAT_HP || stat > STAT_EVASION {
		panic(fmt.Sprintf("%s has no stage", stat))
	}

	return int(stat)
}

func (s StatSet) Get(stat Stat) uint16 {
	return s[statSlot(stat)]
}

func (s *StatSet) Set(stat Stat, value uint16) {
	s[statSlot(stat)] = value
}
