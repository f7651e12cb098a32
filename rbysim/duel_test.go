package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/nathanieltooley/genwun/data"
	"github.com/nathanieltooley/genwun/rby"
	"github.com/nathanieltooley/genwun/rbysim/global"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDex = rby.Must(rby.DefaultLoader(data.Files))

func newTestSide(t *testing.T, species string, move string) side {
	t.Helper()

	s, err := buildSide(testDex, global.SideConfig{Species: species, Level: 100, Move: move}, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	return s
}

func TestDuelEnds(t *testing.T) {
	var out bytes.Buffer
	d := newDuel(newTestSide(t, "mewtwo", ""), newTestSide(t, "mew", ""), 100, &out, zerolog.Nop())

	result := d.Run(rby.NewRandSource(rand.New(rand.NewPCG(1, 1))))

	assert.Less(t, result.Turns, 100)
	assert.False(t, d.bothAlive())
	assert.Contains(t, out.String(), "fainted!")
}

func TestDuelTurnLimit(t *testing.T) {
	var out bytes.Buffer
	// Electric can't touch Ground and Ground can't touch Flying
	d := newDuel(newTestSide(t, "zapdos", "thunderbolt"), newTestSide(t, "onix", "earthquake"), 5, &out, zerolog.Nop())

	result := d.Run(rby.NewRandSource(rand.New(rand.NewPCG(1, 1))))

	assert.Equal(t, duelResult{Turns: 5, Winner: -1}, result)
	assert.Contains(t, out.String(), "It doesn't affect")
}

func TestFasterSideGoesFirst(t *testing.T) {
	d := newDuel(newTestSide(t, "snorlax", ""), newTestSide(t, "jolteon", ""), 1, &bytes.Buffer{}, zerolog.Nop())

	assert.Equal(t, [2]int{1, 0}, d.turnOrder(rby.NewScriptedSource()))

	d.sides[1].state.SetStage(rby.STAT_SPEED, func(m rby.Modifier) rby.Modifier { return m.Add(-6) })
	assert.Equal(t, [2]int{0, 1}, d.turnOrder(rby.NewScriptedSource()))
}

func TestSpeedTieIsRandom(t *testing.T) {
	d := newDuel(newTestSide(t, "ditto", ""), newTestSide(t, "ditto", ""), 1, &bytes.Buffer{}, zerolog.Nop())

	assert.Equal(t, [2]int{0, 1}, d.turnOrder(rby.NewScriptedSource(0)))
	assert.Equal(t, [2]int{1, 0}, d.turnOrder(rby.NewScriptedSource(1)))
}

func TestBuildSideErrors(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := buildSide(testDex, global.SideConfig{Species: "missingno", Level: 100}, rng)
	assert.ErrorIs(t, err, rby.ErrUnknownSpecies)

	_, err = buildSide(testDex, global.SideConfig{Species: "mew", Level: 101}, rng)
	assert.ErrorIs(t, err, rby.ErrInvalidPokemon)

	_, err = buildSide(testDex, global.SideConfig{Species: "mew", Level: 100, Move: "metronome"}, rng)
	assert.ErrorIs(t, err, rby.ErrUnknownMove)
}

func TestBuildSideNickname(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	s, err := buildSide(testDex, global.SideConfig{Species: "mew", Level: 100, Nickname: "Pinky"}, rng)
	require.NoError(t, err)
	assert.Equal(t, "Pinky", s.state.Pokemon().Name)

	s, err = buildSide(testDex, global.SideConfig{Species: "mew", Level: 100}, rng)
	require.NoError(t, err)
	assert.Equal(t, "Mew", s.state.Pokemon().Name)
}

func TestHpBar(t *testing.T) {
	assert.Equal(t, hpBarWidth, strings.Count(hpBar(100, 100), "█"))
	assert.Equal(t, 1, strings.Count(hpBar(1, 400), "█"))
	assert.Equal(t, hpBarWidth, strings.Count(hpBar(0, 400), "░"))
}
