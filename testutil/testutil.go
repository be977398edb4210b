package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
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

// Ints returns n values drawn from [0,limit).
func (r *RNG) Ints(n, limit int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// DistinctInts returns a permutation of 0..n-1 scaled by step, so no two
// values tie.
func (r *RNG) DistinctInts(n, step int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, n)
	for i, p := range r.rand.Perm(n) {
		out[i] = p * step
	}
	return out
}

// Floats returns n values uniform in [0,1).
func (r *RNG) Floats(n int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}
	return out
}

// WithMissing returns a copy of values with each element replaced by nil
// with probability rate.
func (r *RNG) WithMissing(values []any, rate float64) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(values))
	for i, v := range values {
		if r.rand.Float64() >= rate {
			out[i] = v
		}
	}
	return out
}

// Labels returns n unique symbolic labels in random order.
func (r *RNG) Labels(n int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, n)
	for i, p := range r.rand.Perm(n) {
		out[i] = fmt.Sprintf("r%04d", p)
	}
	return out
}
