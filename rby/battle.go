package rby

import (
	"fmt"

	"github.com/go-logr/logr"
)

var battleLogger = func() logr.Logger {
	return internalLogger.WithName("battle")
}

type ConditionKind uint8

const (
	STATUS_NONE ConditionKind = iota
	STATUS_BURN
	STATUS_PARA
	STATUS_FROZEN
	STATUS_SLEEP
	STATUS_POISON
)

// Condition is the non-volatile status of a Pokemon. The zero value means no condition.
//
// SleepTurns is only meaningful for STATUS_SLEEP and BadPoison only for STATUS_POISON.
type Condition struct {
	Kind       ConditionKind
	SleepTurns uint8
	BadPoison  bool
}

func Burned() Condition {
	return Condition{Kind: STATUS_BURN}
}

func Paralyzed() Condition {
	return Condition{Kind: STATUS_PARA}
}

func Frozen() Condition {
	return Condition{Kind: STATUS_FROZEN}
}

func Asleep(turnsRemaining uint8) Condition {
	return Condition{Kind: STATUS_SLEEP, SleepTurns: turnsRemaining}
}

func Poisoned(bad bool) Condition {
	return Condition{Kind: STATUS_POISON, BadPoison: bad}
}

func (c Condition) IsNone() bool {
	return c.Kind == STATUS_NONE
}

func (c Condition) String() string {
	switch c.Kind {
	case STATUS_BURN:
		return "burned"
	case STATUS_PARA:
		return "paralyzed"
	case STATUS_FROZEN:
		return "frozen"
	case STATUS_SLEEP:
		return fmt.Sprintf("asleep (%d turns)", c.SleepTurns)
	case STATUS_POISON:
		if c.BadPoison {
			return "badly poisoned"
		}
		return "poisoned"
	default:
		return "none"
	}
}

// NonVolatileState is what a Pokemon keeps when it is switched out.
type NonVolatileState struct {
	Pokemon   *Pokemon
	HP        uint16
	Condition Condition
}

// NewNonVolatileState panics if pokemon is not a valid Gen I Pokemon.
func NewNonVolatileState(pokemon *Pokemon) NonVolatileState {
	mustBeValid(pokemon)

	return NonVolatileState{
		Pokemon: pokemon,
		HP:      pokemon.RawStat(STAT_HP),
	}
}

// BattleState is the state of the Pokemon currently on the field.
// It is owned by whoever runs the battle and is not safe for concurrent use.
type BattleState struct {
	nvState NonVolatileState
	stats   StatSet
	stages  [7]Modifier
}

// NewBattleState sends out a fresh Pokemon at full health with no condition.
func NewBattleState(pokemon *Pokemon) *BattleState {
	return RestoreBattleState(NewNonVolatileState(pokemon))
}

// RestoreBattleState sends a Pokemon back in from a snapshot.
//
// Stats are recomputed from the Pokemon, every stage is reset and bad poison
// turns back into regular poison. An invalid Pokemon or an HP above its max panics.
func RestoreBattleState(nvState NonVolatileState) *BattleState {
	mustBeValid(nvState.Pokemon)

	if maxHP := nvState.Pokemon.RawStat(STAT_HP); nvState.HP > maxHP {
		panic(fmt.Errorf("%w: %s has %d HP, max is %d", ErrInvalidPokemon, nvState.Pokemon.Name, nvState.HP, maxHP))
	}

	if nvState.Condition.Kind == STATUS_POISON && nvState.Condition.BadPoison {
		battleLogger().V(1).Info("bad poison downgraded on restore", "pokemon_name", nvState.Pokemon.Name)
		nvState.Condition = Poisoned(false)
	}

	return &BattleState{
		nvState: nvState,
		stats:   nvState.Pokemon.RawStats(),
	}
}

func mustBeValid(pokemon *Pokemon) {
	if pokemon == nil {
		panic(fmt.Errorf("%w: nil pokemon", ErrInvalidPokemon))
	}
	if err := pokemon.Validate(); err != nil {
		panic(err)
	}
}

// Snapshot returns the part of the state that survives a switch.
func (b *BattleState) Snapshot() NonVolatileState {
	return b.nvState
}

func (b *BattleState) Pokemon() *Pokemon {
	return b.nvState.Pokemon
}

func (b *BattleState) HP() uint16 {
	return b.nvState.HP
}

func (b *BattleState) MaxHP() uint16 {
	return b.stats.Get(STAT_HP)
}

func (b *BattleState) IsAlive() bool {
	return b.nvState.HP > 0
}

// ApplyDamage removes HP, stopping at 0, and returns what is left.
func (b *BattleState) ApplyDamage(amount uint16) uint16 {
	if amount >= b.nvState.HP {
		b.nvState.HP = 0
	} else {
		b.nvState.HP -= amount
	}

	battleLogger().V(2).Info("damage applied", "pokemon_name", b.nvState.Pokemon.Name, "amount", amount, "hp", b.nvState.HP)
	return b.nvState.HP
}

// Heal restores HP up to the maximum and returns the new HP.
func (b *BattleState) Heal(amount uint16) uint16 {
	b.nvState.HP = uint16(min(uint32(b.nvState.HP)+uint32(amount), uint32(b.MaxHP())))
	return b.nvState.HP
}

func (b *BattleState) Condition() Condition {
	return b.nvState.Condition
}

func (b *BattleState) SetCondition(condition Condition) {
	b.nvState.Condition = condition
}

func (b *BattleState) Stage(stat Stat) Modifier {
	return b.stages[stageSlot(stat)]
}

// SetStage replaces the stage of stat with the result of change and returns it.
func (b *BattleState) SetStage(stat Stat, change func(Modifier) Modifier) Modifier {
	slot := stageSlot(stat)
	b.stages[slot] = change(b.stages[slot])

	return b.stages[slot]
}

// RawStat is the cached stat without any stage applied.
func (b *BattleState) RawStat(stat Stat) uint16 {
	return b.stats.Get(stat)
}

// Stat is the current value of a combat stat with its stage applied.
// Accuracy and evasion have no value; use Stage for those.
func (b *BattleState) Stat(stat Stat) uint16 {
	raw := b.stats.Get(stat)
	if stat == STAT_HP {
		return raw
	}

	return b.stages[stageSlot(stat)].Apply(raw)
}
