// Package sample provides the injectable randomness used by the city simulation.
//
// Every synthetic reading (brightness, consumption, sensor state, incident
// counts) is drawn through a Source so tests can substitute a fixed sequence
// and assert exact derived values.
package sample

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies Source but is not safe for concurrent use;
// prefer New, which guards the generator with a mutex.
type Source interface {
	IntN(n int) int
}

// lockedSource serializes access to a single generator shared by all managers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a concurrency-safe Source.
// seed 0 draws the seed from the runtime's entropy source.
func New(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n).
func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Between returns a value in the closed range [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Bool returns a fair coin flip.
func Bool(src Source) bool {
	return src.IntN(2) == 1
}

// Pick returns one element of items chosen uniformly.
// items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
