package rby

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the only way randomness enters the battle calculations.
//
// IntN returns a uniformly distributed integer in [lo, hi).
type Source interface {
	IntN(lo int, hi int) int
}

func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		// crypto/rand does not fail on any platform we run on
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

type randSource struct {
	rng *rand.Rand
}

// NewRandSource wraps a math/rand generator so it can drive move resolution.
func NewRandSource(rng *rand.Rand) Source {
	return randSource{rng: rng}
}

func (s randSource) IntN(lo int, hi int) int {
	return lo + s.rng.IntN(hi-lo)
}

// ScriptedSource replays a fixed list of values in order.
// It panics if it runs out of values or a value does not fit the requested range.
type ScriptedSource struct {
	Values []int
	next   int
}

func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

func (s *ScriptedSource) IntN(lo int, hi int) int {
	if s.next >= len(s.Values) {
		panic(fmt.Sprintf("scripted source exhausted after %d values", len(s.Values)))
	}

	v := s.Values[s.next]
	if v < lo || v >= hi {
		panic(fmt.Sprintf("scripted value %d outside of [%d, %d)", v, lo, hi))
	}

	s.next++
	return v
}

// Remaining is the number of values that have not been drawn yet.
func (s *ScriptedSource) Remaining() int {
	return len(s.Values) - s.next
}

// StepSource counts upwards from Start by Step, wrapping each value into the requested range.
type StepSource struct {
	Current int
	Step    int
}

func NewStepSource(start int, step int) *StepSource {
	return &StepSource{Current: start, Step: step}
}

func (s *StepSource) IntN(lo int, hi int) int {
	v := lo + s.Current%(hi-lo)
	s.Current += s.Step

	return v
}
