package rby

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeQuirks(t *testing.T) {
	assert.Equal(t, NEUTRAL, TYPE_ICE.Effectiveness(TYPE_FIRE))
	assert.Equal(t, WEAK, TYPE_POISON.Effectiveness(TYPE_BUG))
	assert.Equal(t, WEAK, TYPE_BUG.Effectiveness(TYPE_POISON))
	assert.Equal(t, IMMUNE, TYPE_GHOST.Effectiveness(TYPE_PSYCHIC))
	assert.Equal(t, IMMUNE, TYPE_GHOST.Effectiveness(TYPE_NORMAL))
}

func TestTypeChartIsDirectional(t *testing.T) {
	assert.Equal(t, IMMUNE, TYPE_NORMAL.Effectiveness(TYPE_GHOST))
	assert.Equal(t, IMMUNE, TYPE_ELECTRIC.Effectiveness(TYPE_GROUND))
	assert.Equal(t, WEAK, TYPE_GROUND.Effectiveness(TYPE_ELECTRIC))
	assert.Equal(t, RESIST, TYPE_FIRE.Effectiveness(TYPE_FIRE))
	assert.Equal(t, WEAK, TYPE_FIRE.Effectiveness(TYPE_ICE))
}

func TestTypeChartCounts(t *testing.T) {
	counts := map[Effectiveness]int{}
	for _, attack := range ALL_TYPES {
		for _, defense := range ALL_TYPES {
			counts[attack.Effectiveness(defense)]++
		}
	}

	assert.Equal(t, 225, counts[NEUTRAL]+counts[WEAK]+counts[RESIST]+counts[IMMUNE])
	assert.Equal(t, 6, counts[IMMUNE])
}

func TestEffectivenessRatio(t *testing.T) {
	assert.Equal(t, uint32(100), NEUTRAL.Ratio().MulInt(100))
	assert.Equal(t, uint32(200), WEAK.Ratio().MulInt(100))
	assert.Equal(t, uint32(50), RESIST.Ratio().MulInt(100))
	assert.Equal(t, uint32(0), IMMUNE.Ratio().MulInt(100))
}

func TestApplyEffectivenessFloorsEachStep(t *testing.T) {
	// 5 -> 2 against water -> 4 against grass, not 5
	assert.Equal(t, uint32(4), ApplyEffectiveness(5, TYPE_FIRE, []Type{TYPE_WATER, TYPE_GRASS}))
	assert.Equal(t, uint32(20), ApplyEffectiveness(5, TYPE_ICE, []Type{TYPE_GRASS, TYPE_FLYING}))
	assert.Equal(t, uint32(0), ApplyEffectiveness(100, TYPE_GHOST, []Type{TYPE_PSYCHIC}))
	assert.Equal(t, uint32(100), ApplyEffectiveness(100, TYPE_NORMAL, nil))
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"psychic", "PSYCHIC", " Psychic "} {
		parsed, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, TYPE_PSYCHIC, parsed)
	}

	_, err := ParseType("Fairy")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestIsPhysical(t *testing.T) {
	physical := []Type{TYPE_NORMAL, TYPE_FIGHTING, TYPE_FLYING, TYPE_POISON, TYPE_GROUND, TYPE_ROCK, TYPE_BUG, TYPE_GHOST}

	for _, typ := range ALL_TYPES {
		assert.Equal(t, lo.Contains(physical, typ), typ.IsPhysical(), typ.String())
	}
}
