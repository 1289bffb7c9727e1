package engine

import (
	"math/rand"
	"time"
)

// Random is the source of every stochastic decision in the simulation
// *rand.Rand satisfies it
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRandom returns a seeded source, seed 0 selects a time-based seed
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
