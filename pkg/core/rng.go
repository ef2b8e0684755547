package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Range returns a uniform value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// Spread returns a uniform value in [-mag, mag).
func (r *RNG) Spread(mag float64) float64 {
	return (r.r.Float64()*2 - 1) * mag
}

// Pick returns a or b with equal probability.
func Pick[T any](r *RNG, a, b T) T {
	if r.Bool() {
		return a
	}
	return b
}
