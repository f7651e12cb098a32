package rby

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestHitCalc(t *testing.T) {
	m := Struggle()
	rng := NewScriptedSource(254, 255)

	// First one struggle should hit.
	assert.True(t, m.Hits(rng, Modifier{}, Modifier{}))
	// Second should be affected by the 1/256 glitch.
	assert.False(t, m.Hits(rng, Modifier{}, Modifier{}))
}

func TestHitCalcAllRolls(t *testing.T) {
	m := Struggle()
	rng := NewScriptedSource(lo.Range(256)...)

	hits := lo.CountBy(lo.Range(256), func(int) bool {
		return m.Hits(rng, NewModifier(-3), NewModifier(1))
	})

	// Should hit 255 * (2 / 5) / (3 / 2) = 68 times
	assert.Equal(t, 68, hits)
}

func TestNeverMissMoves(t *testing.T) {
	swift := Move{Name: "swift", Power: 60, Type: TYPE_NORMAL}
	rng := NewScriptedSource()

	// nothing may be drawn
	assert.True(t, swift.Hits(rng, NewModifier(-6), NewModifier(6)))
}

func TestIsCrit(t *testing.T) {
	m := Struggle()
	state := NewBattleState(mew())
	rng := NewStepSource(0, 1)

	hits := lo.CountBy(lo.Range(256), func(int) bool {
		return m.IsCritical(rng, state)
	})

	// Mew has a probability of 50/256 to hit a critical, so…
	assert.Equal(t, 50, hits)
}

func TestHighCritRatio(t *testing.T) {
	slash := Move{Name: "slash", Power: 70, Accuracy: 255, Effect: HighCritEffect(), Type: TYPE_NORMAL}

	assert.Equal(t, uint32(200), criticalThreshold(100, slash.Effect))
	assert.Equal(t, uint32(144), criticalThreshold(72, slash.Effect))
	// clamped to the size of the roll
	assert.Equal(t, uint32(255), criticalThreshold(130, slash.Effect))
	assert.Equal(t, uint32(65), criticalThreshold(130, NormalEffect()))
}

func TestRecoil(t *testing.T) {
	m := Struggle()

	recoil, ok := m.Recoil(10)
	assert.True(t, ok)
	assert.Equal(t, uint16(5), recoil)

	recoil, ok = m.Recoil(1)
	assert.True(t, ok)
	assert.Equal(t, uint16(1), recoil)

	takeDown := Move{Name: "take-down", Power: 90, Accuracy: 216, Effect: RecoilEffect(4), Type: TYPE_NORMAL}
	recoil, _ = takeDown.Recoil(99)
	assert.Equal(t, uint16(24), recoil)

	_, ok = Move{Name: "tackle", Power: 35, Accuracy: 242, Type: TYPE_NORMAL}.Recoil(50)
	assert.False(t, ok)
}

func TestRecoilEffectRejectsZero(t *testing.T) {
	assert.Panics(t, func() { RecoilEffect(0) })
}

func TestStruggle(t *testing.T) {
	m := Struggle()

	assert.Equal(t, uint8(50), m.Power)
	assert.Equal(t, uint8(255), m.Accuracy)
	assert.Equal(t, RecoilEffect(2), m.Effect)
	assert.Equal(t, TYPE_NORMAL, m.Type)

	// callers get a copy
	m.Power = 1
	assert.Equal(t, uint8(50), Struggle().Power)
}
