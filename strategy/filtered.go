// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// filtered.go — Filtered[T]: one sub-strategy behind a Sieve.
//
// Ownership:
//   • The sub-strategy is a clone taken when the first Filter is applied, then
//     SHARED (immutable) by every Filtered derived from it and by Clone.
//     Strategies never mutate after construction.

package strategy

import "go.uber.org/zap"

// Filtered yields only values of its sub-strategy that pass its Sieve.
type Filtered[T any] struct {
	base  Strategy[T]
	sieve Sieve[T]
	cfg   config
}

// Generate sifts the sub-strategy's output through the Sieve.
// Returns *OutOfCyclesError when the bound is exhausted, or the sub-strategy's
// own error unchanged.
func (f *Filtered[T]) Generate() (T, error) {
	v, attempts, exhausted, err := f.sieve.sift(f.base.Generate)
	switch {
	case err == nil:
		f.cfg.metrics.observeSift(attempts, outcomeAccepted)
	case exhausted:
		f.cfg.metrics.observeSift(attempts, outcomeExhausted)
		f.cfg.logger.Debug("sieve exhausted",
			zap.Int("attempts", attempts),
			zap.Stringer("strictest", strictest{err}),
			zap.Error(err))
	default:
		f.cfg.metrics.observeSift(attempts, outcomeFailed)
	}

	return v, err
}

// Clone copies the wrapper; the sub-strategy stays shared (see file header).
func (f *Filtered[T]) Clone() Strategy[T] {
	return CloneOf[T](f)
}

func (f *Filtered[T]) settings() config { return f.cfg }

// Sieve returns the wrapper's Sieve (a value; callers cannot mutate f through it).
func (f *Filtered[T]) Sieve() Sieve[T] { return f.sieve }

// filter returns a sibling sharing f's sub-strategy with an expanded Sieve.
func (f *Filtered[T]) filter(r Requirement[T], opts ...Option) *Filtered[T] {
	cfg := f.cfg.with(opts...)

	return &Filtered[T]{
		base:  f.base,
		sieve: f.sieve.Expand(r).withMaxAttempts(cfg.maxAttempts),
		cfg:   cfg,
	}
}

// strictest renders OutOfCyclesError.Strictest lazily for the logger.
type strictest struct{ err error }

func (s strictest) String() string {
	if e, ok := s.err.(*OutOfCyclesError); ok {
		return e.Strictest()
	}

	return ""
}
