// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// source.go — the injectable randomness capability.
//
// Design:
//   • Source is the only shared resource between strategies.
//   • NewSource wraps a seeded *rand.Rand behind a mutex, so a single seeded
//     stream can drive a whole strategy tree from many goroutines.
//   • processSource delegates to the top-level math/rand functions, which are
//     auto-seeded and goroutine-safe; it is the default when nothing is injected.

package strategy

import (
	"math/rand"
	"sync"
)

// Source supplies entropy to strategies. Implementations must be safe for
// concurrent use.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
}

// lockedSource serializes access to a non-thread-safe *rand.Rand.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a deterministic Source seeded with seed.
// Equal seeds and equal call order yield identical streams.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// newLockedSource adopts an existing generator. The caller must stop using r directly.
func newLockedSource(r *rand.Rand) Source {
	return &lockedSource{rng: r}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Uint64()
}

// processSource is the process-wide default.
type processSource struct{}

func (processSource) Intn(n int) int   { return rand.Intn(n) }
func (processSource) Float64() float64 { return rand.Float64() }
func (processSource) Uint64() uint64   { return rand.Uint64() }

// Uint64n returns a uniform value in [0, n) drawn from src; n == 0 means the
// full 64-bit range. Rejection sampling removes modulo bias.
// Complexity: expected O(1) draws (at most 2 on average).
func Uint64n(src Source, n uint64) uint64 {
	if n == 0 {
		return src.Uint64()
	}
	if n&(n-1) == 0 { // power of two: mask is exact
		return src.Uint64() & (n - 1)
	}
	// Largest multiple of n that fits; draws at or above it would bias the result.
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v := src.Uint64()
		if v < limit {
			return v % n
		}
	}
}
