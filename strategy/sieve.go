// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// sieve.go — bounded rejection sampling.
//
// Contract:
//   • A candidate is accepted iff it satisfies EVERY requirement, checked in
//     insertion order with short-circuit on the first failure.
//   • At most maxAttempts producer calls per Sift; exhaustion yields *OutOfCyclesError.
//   • Producer errors are returned unchanged on the spot (no retry).
//   • Expand never mutates the receiver: the requirement slice is copied.
//
// Complexity:
//   • Sift: O(maxAttempts · (P + R)) where P is producer cost and R the requirement count.

package strategy

import "fmt"

// Sieve is an immutable, ordered conjunction of requirements plus an attempt bound.
type Sieve[T any] struct {
	requirements []Requirement[T]
	maxAttempts  int
}

// NewSieve returns a Sieve with the given bound and requirements.
// Panics if maxAttempts < 1.
func NewSieve[T any](maxAttempts int, requirements ...Requirement[T]) Sieve[T] {
	if maxAttempts < 1 {
		panic(fmt.Sprintf("strategy: NewSieve(%d): attempt bound must be ≥ 1", maxAttempts))
	}
	reqs := make([]Requirement[T], len(requirements))
	copy(reqs, requirements)

	return Sieve[T]{requirements: reqs, maxAttempts: maxAttempts}
}

// Expand returns a new Sieve equal to s with r appended.
// Two Expand calls on the same Sieve produce independent Sieves.
func (s Sieve[T]) Expand(r Requirement[T]) Sieve[T] {
	// Fresh backing array: appending in place could alias a sibling branch.
	reqs := make([]Requirement[T], len(s.requirements), len(s.requirements)+1)
	copy(reqs, s.requirements)
	reqs = append(reqs, r)

	return Sieve[T]{requirements: reqs, maxAttempts: s.maxAttempts}
}

// withMaxAttempts returns s with a different bound and the same requirements.
func (s Sieve[T]) withMaxAttempts(n int) Sieve[T] {
	s.maxAttempts = n

	return s
}

// Len returns the number of requirements.
func (s Sieve[T]) Len() int { return len(s.requirements) }

// MaxAttempts returns the attempt bound.
func (s Sieve[T]) MaxAttempts() int { return s.maxAttempts }

// Requirements returns a copy of the requirements in evaluation order.
func (s Sieve[T]) Requirements() []Requirement[T] {
	out := make([]Requirement[T], len(s.requirements))
	copy(out, s.requirements)

	return out
}

// Accepts reports whether v satisfies all requirements.
func (s Sieve[T]) Accepts(v T) bool {
	return s.firstFailure(v) < 0
}

// firstFailure returns the index of the first requirement v fails, or -1.
func (s Sieve[T]) firstFailure(v T) int {
	for i, r := range s.requirements {
		if !r.Check(v) {
			return i
		}
	}

	return -1
}

// Sift calls producer until a candidate passes every requirement, or the attempt
// bound is exhausted.
func (s Sieve[T]) Sift(producer func() (T, error)) (T, error) {
	v, _, _, err := s.sift(producer)

	return v, err
}

// sift is Sift plus the number of producer calls spent and whether the bound
// was exhausted by this Sieve (as opposed to an error from the producer).
func (s Sieve[T]) sift(producer func() (T, error)) (T, int, bool, error) {
	var (
		zero       T
		rejections []int // allocated on first rejection only
	)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate, err := producer()
		if err != nil {
			return zero, attempt, false, err
		}
		failed := s.firstFailure(candidate)
		if failed < 0 {
			return candidate, attempt, false, nil
		}
		if rejections == nil {
			rejections = make([]int, len(s.requirements))
		}
		rejections[failed]++
	}

	names := make([]string, len(s.requirements))
	for i, r := range s.requirements {
		names[i] = r.Name()
	}

	return zero, s.maxAttempts, true, &OutOfCyclesError{
		Attempts:     s.maxAttempts,
		Requirements: names,
		Rejections:   rejections,
	}
}
