// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// config.go — resolved configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for combinator knobs.
//   • Defaults are documented constants; no globals beyond the process Source.
//   • resolve applies options in-order on top of a base (later overrides earlier).
//
// Defaults:
//   • maxAttempts = DefaultMaxAttempts
//   • source      = process-wide math/rand source (auto-seeded, goroutine-safe)
//   • logger      = zap.NewNop()
//   • metrics     = nil (no collection)

package strategy

import "go.uber.org/zap"

// DefaultMaxAttempts is the Sieve attempt bound used when WithMaxAttempts is not given.
const DefaultMaxAttempts = 100

// config aggregates the knobs shared by combinators and leaves.
// It is stored BY VALUE on each strategy (immutable after construction).
type config struct {
	// Sieve attempt bound per Generate call; always ≥ 1.
	maxAttempts int
	// Entropy supply; never nil after resolution.
	source Source
	// Structured logger; never nil after resolution.
	logger *zap.Logger
	// Optional collectors; nil disables metrics.
	metrics *Metrics
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		maxAttempts: DefaultMaxAttempts,
		source:      processSource{},
		logger:      zap.NewNop(),
		metrics:     nil,
	}
}

// with returns a copy of c with opts applied in order.
// Complexity: O(len(opts)).
func (c config) with(opts ...Option) config {
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// newConfig resolves opts on top of the defaults.
func newConfig(opts ...Option) config {
	return defaultConfig().with(opts...)
}

// configured is implemented by the combinator wrappers that hold a config.
type configured interface {
	settings() config
}

// inherit resolves opts on top of s's config when s is a combinator wrapper,
// and on top of the defaults otherwise.
func inherit(s any, opts ...Option) config {
	if c, ok := s.(configured); ok {
		return c.settings().with(opts...)
	}

	return newConfig(opts...)
}

// Settings is the read-only view of a resolved configuration, for leaf
// packages that take strategy options.
type Settings struct {
	cfg config
}

// Resolve applies opts to the defaults and returns the result.
func Resolve(opts ...Option) Settings {
	return Settings{cfg: newConfig(opts...)}
}

// MaxAttempts returns the Sieve attempt bound.
func (s Settings) MaxAttempts() int { return s.cfg.maxAttempts }

// Source returns the entropy supply.
func (s Settings) Source() Source { return s.cfg.source }

// Logger returns the structured logger.
func (s Settings) Logger() *zap.Logger { return s.cfg.logger }
