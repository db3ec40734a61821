package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// Intn число в [0, n).
	Intn func(n int) int
	// Between число в [from, to].
	Between func(from, to int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
		Between: func(from, to int) int { return from + random.Intn(to-from+1) },
	}
}
