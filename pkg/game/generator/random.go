package generator

import "math/rand"

// Source is the random source the generator draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance reports whether a percent roll succeeds.
func chance(rng Source, percent int) bool {
	return rng.Intn(100) < percent
}
