// Package tests contains integration tests that run against the embedded data files
package tests

import (
	"math/rand/v2"

	"github.com/nathanieltooley/genwun/data"
	"github.com/nathanieltooley/genwun/rby"
)

var (
	testDex = rby.Must(rby.DefaultLoader(data.Files))
	// fixed seed so failures can be replayed
	testingRng = rand.New(rand.NewPCG(1, 2))
)

// getPerfectPokemon builds a level 100 pokemon with max IVs and EVs, like the ones used in link battles
func getPerfectPokemon(name string) *rby.Pokemon {
	species := rby.Must(testDex.GetSpeciesByName(name))
	pokemon := rby.NewPokeBuilder(species, testingRng).SetLevel(100).SetPerfectIvs().SetPerfectEvs().Build()

	return &pokemon
}
