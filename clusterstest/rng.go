package clusterstest

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Nums generates num points uniformly in [0, span).
// Duplicates are likely for small spans.
func (r *RNG) Nums(num, span int) []Num {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Num, num)
	for i := range out {
		out[i] = Num(r.rand.Intn(span))
	}
	return out
}

// Blobs generates groups of size points each, with groups centered
// gap apart and members spread by at most spread around their center.
// Returns the points in shuffled order.
func (r *RNG) Blobs(groups, size, gap, spread int) []Num {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Num, 0, groups*size)
	for g := range groups {
		center := g * gap
		for range size {
			out = append(out, Num(center+r.rand.Intn(spread+1)))
		}
	}
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
