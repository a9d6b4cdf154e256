package rng

import (
	"math/rand"
)

// Seeded is a reproducible generator backed by math/rand
// Two generators built from the same seed produce the same sequence.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

