package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/nathanieltooley/genwun/data"
	"github.com/nathanieltooley/genwun/rby"
	"github.com/nathanieltooley/genwun/rbysim/global"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", global.DefaultConfigLocation(), "path to the YAML config file")
	seed := flag.Uint64("seed", 0, "RNG seed, overrides the config. 0 picks one at random")
	attacker := flag.String("attacker", "", "attacking species, overrides the config")
	defender := flag.String("defender", "", "defending species, overrides the config")
	flag.Parse()

	config, err := global.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seed != 0 {
		config.Seed = *seed
	}
	if *attacker != "" {
		config.Attacker.Species = *attacker
	}
	if *defender != "" {
		config.Defender.Species = *defender
	}

	if err := global.GlobalInit(config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(config); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

func run(config global.GlobalConfig) error {
	dex, err := rby.DefaultLoader(data.Files)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	seed := rby.CreateRandomStateSeed()
	if config.Seed != 0 {
		seed = *rand.NewPCG(config.Seed, config.Seed)
	}
	rng := rby.CreateRNG(&seed)

	attacker, err := buildSide(dex, config.Attacker, rng)
	if err != nil {
		return err
	}

	defender, err := buildSide(dex, config.Defender, rng)
	if err != nil {
		return err
	}

	d := newDuel(attacker, defender, config.MaxTurns, os.Stdout, log.Logger)
	log.Info().Str("battle_id", d.ID.String()).Uint64("seed", config.Seed).Msg("starting duel")

	result := d.Run(rby.NewRandSource(rng))
	if result.Winner < 0 {
		fmt.Printf("No winner after %d turns\n", result.Turns)
	} else {
		fmt.Printf("%s wins after %d turns\n", d.sides[result.Winner].state.Pokemon().Name, result.Turns)
	}

	return nil
}

// buildSide makes a Pokemon with random IVs and maxed EVs from the config.
func buildSide(dex rby.Dex, config global.SideConfig, rng *rand.Rand) (side, error) {
	species, err := dex.GetSpeciesByName(config.Species)
	if err != nil {
		return side{}, err
	}

	if config.Level < 1 || config.Level > rby.MAX_LEVEL {
		return side{}, fmt.Errorf("%w: %s at level %d", rby.ErrInvalidPokemon, config.Species, config.Level)
	}

	move := rby.Struggle()
	if config.Move != "" {
		move, err = dex.GetMove(config.Move)
		if err != nil {
			return side{}, err
		}
	}

	builder := rby.NewPokeBuilder(species, rng).SetLevel(config.Level).SetRandomIvs().SetPerfectEvs()
	if config.Nickname != "" {
		builder.SetName(config.Nickname)
	}

	pokemon := builder.Build()
	log.Debug().Str("species", pokemon.Name).Uint8("level", pokemon.Level).Str("move", move.Name).Msg("built side")

	return side{state: rby.NewBattleState(&pokemon), move: move}, nil
}
