package rby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierRatioTable(t *testing.T) {
	expected := map[int]Ratio{
		-6: {1, 4},
		-5: {28, 100},
		-4: {33, 100},
		-3: {40, 100},
		-2: {1, 2},
		-1: {66, 100},
		0:  {2, 2},
		1:  {3, 2},
		2:  {4, 2},
		3:  {5, 2},
		4:  {6, 2},
		5:  {7, 2},
		6:  {8, 2},
	}

	for stage, ratio := range expected {
		assert.Equal(t, ratio, NewModifier(stage).Ratio(), "stage %d", stage)
	}
}

func TestModifierCombineSaturates(t *testing.T) {
	for s := MIN_STAGE; s <= MAX_STAGE; s++ {
		for d := -20; d <= 20; d++ {
			expected := max(MIN_STAGE, min(MAX_STAGE, s+d))

			added := NewModifier(s).Add(d)
			require.Equal(t, expected, added.Stage(), "%d + %d", s, d)

			if d >= MIN_STAGE && d <= MAX_STAGE {
				require.Equal(t, expected, NewModifier(s).Combine(NewModifier(d)).Stage(), "%d + %d", s, d)
			}
		}
	}
}

func TestModifierConstructionClamps(t *testing.T) {
	assert.Equal(t, MAX_STAGE, NewModifier(100).Stage())
	assert.Equal(t, MIN_STAGE, NewModifier(-100).Stage())
	assert.Equal(t, 0, Modifier{}.Stage())
}

func TestModifierApply(t *testing.T) {
	assert.Equal(t, uint16(298), Modifier{}.Apply(298))
	assert.Equal(t, uint16(596), NewModifier(2).Apply(298))
	// 66/100 rather than 2/3
	assert.Equal(t, uint16(66), NewModifier(-1).Apply(100))
	assert.Equal(t, uint16(MAX_STAT), NewModifier(6).Apply(400))
}
