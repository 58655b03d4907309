// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// options.go — functional options for combinators and leaves.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics on configuration.
//   • Determinism is explicit: seed via WithSeed, or share one NewSource via WithSource.

package strategy

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a combinator or leaf by mutating its config before use.
type Option func(*config)

// WithMaxAttempts sets the Sieve attempt bound (producer calls per Generate).
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("strategy: WithMaxAttempts(%d): must be ≥ 1", n))
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithSeed installs a fresh deterministic Source seeded with seed.
// Each WithSeed call resolves to its own stream; share a single NewSource via
// WithSource to drive a whole tree from one stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.source = NewSource(seed)
	}
}

// WithRand adopts r as the entropy supply, guarded by a mutex.
// Panics on nil; the caller must not use r directly afterwards.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("strategy: WithRand(nil)")
	}
	src := newLockedSource(r)
	return func(c *config) {
		c.source = src
	}
}

// WithSource installs a caller-provided Source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("strategy: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}

// WithLogger sets the structured logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("strategy: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics attaches Prometheus collectors. A nil m disables collection.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
