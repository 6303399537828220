package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the wall clock and the runtime source, so
// consecutive calls never repeat a sequence.
func NewTimeRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))}
}

// Chance reports true with probability p. Values outside [0, 1] are not clamped:
// p <= 0 never fires and p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillChance sets each cell alive with probability p.
func (r *RNG) FillChance(buf []bool, p float64) {
	for i := range buf {
		buf[i] = r.Chance(p)
	}
}
