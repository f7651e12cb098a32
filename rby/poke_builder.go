package rby

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("pokemon-builder")
}

type PokemonBuilder struct {
	poke Pokemon
	rng  *rand.Rand
}

// NewPokeBuilder starts a level 1 Pokemon of the given species with zero IVs and EVs.
func NewPokeBuilder(species *Species, rng *rand.Rand) *PokemonBuilder {
	poke := Pokemon{
		Name:      species.Name,
		Level:     1,
		BaseStats: species.BaseStats,
		Types:     slices.Clone(species.Types),
	}

	return &PokemonBuilder{poke, rng}
}

func (pb *PokemonBuilder) SetName(name string) *PokemonBuilder {
	pb.poke.Name = name
	return pb
}

func (pb *PokemonBuilder) SetEvs(evs StatSet) *PokemonBuilder {
	pb.poke.EVs = evs

	builderLogger().V(1).Info("Setting EVs",
		"HP", evs[STAT_HP],
		"ATTACK", evs[STAT_ATTACK],
		"DEF", evs[STAT_DEFENSE],
		"SPECIAL", evs[STAT_SPECIAL],
		"SPEED", evs[STAT_SPEED])

	return pb
}

func (pb *PokemonBuilder) SetPerfectEvs() *PokemonBuilder {
	pb.poke.EVs = PERFECT_EVS

	builderLogger().V(1).Info("Setting Perfect EVs")

	return pb
}

// SetIvs sets the attack, defense, special and speed IVs. Gen I derives the HP IV
// from the low bit of each of the other four, so ivs[STAT_HP] is ignored.
func (pb *PokemonBuilder) SetIvs(ivs StatSet) *PokemonBuilder {
	ivs[STAT_HP] = ivs[STAT_ATTACK]&1<<3 | ivs[STAT_DEFENSE]&1<<2 | ivs[STAT_SPEED]&1<<1 | ivs[STAT_SPECIAL]&1
	pb.poke.IVs = ivs

	builderLogger().V(1).Info("Setting IVs",
		"HP", ivs[STAT_HP],
		"ATTACK", ivs[STAT_ATTACK],
		"DEF", ivs[STAT_DEFENSE],
		"SPECIAL", ivs[STAT_SPECIAL],
		"SPEED", ivs[STAT_SPEED])

	return pb
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	pb.poke.IVs = PERFECT_IVS

	builderLogger().V(1).Info("Setting Perfect IVs")

	return pb
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	var ivs StatSet

	for i := range ivs {
		ivs[i] = uint16(pb.rng.UintN(MAX_IV + 1))
	}

	builderLogger().V(1).Info("Setting Random IVs")
	pb.SetIvs(ivs)

	return pb
}

func (pb *PokemonBuilder) SetLevel(level uint8) *PokemonBuilder {
	pb.poke.Level = level
	return pb
}

// SetRandomLevel picks a level in [low, high]. Panics if high is below low.
func (pb *PokemonBuilder) SetRandomLevel(low uint8, high uint8) *PokemonBuilder {
	if high < low {
		panic(fmt.Errorf("%w: random level range %d-%d is empty", ErrInvalidPokemon, low, high))
	}

	n := uint(high-low) + 1
	pb.poke.Level = uint8(pb.rng.UintN(n)) + low

	return pb
}

// Build validates and returns the Pokemon. An invalid Pokemon is a programming
// error, so Build panics rather than returning it.
func (pb *PokemonBuilder) Build() Pokemon {
	if err := pb.poke.Validate(); err != nil {
		panic(err)
	}

	builderLogger().V(1).Info("Building pokemon", "pokemon_name", pb.poke.Name, "level", pb.poke.Level)
	return pb.poke
}
