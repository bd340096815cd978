package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the only source of non-determinism in the simulation.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded generator. A zero seed is replaced by the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
