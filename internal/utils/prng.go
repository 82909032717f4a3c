// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so a whole session can be replayed
// from one seed in tests.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns a fair coin flip.
func (s *PRNGService) Bool() bool {
	return s.rng.Float64() < 0.5
}

// Jitter returns a value in [-spread/2, spread/2).
func (s *PRNGService) Jitter(spread float64) float64 {
	return spread * (s.rng.Float64() - 0.5)
}

// Perm returns a random permutation of [0, n).
func (s *PRNGService) Perm(n int) []int {
	return s.rng.Perm(n)
}
