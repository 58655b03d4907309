// SPDX-License-Identifier: MIT
// Package: cauldron/strategy

// Package strategy is the combinator core of cauldron: composable producers of
// pseudo-random values ("strategies") for property-based testing.
//
// A Strategy[T] produces one T per Generate call. Strategies are combined with
// three persistent (non-mutating) combinators:
//
//   - Filter: wraps a strategy in a Sieve, a bounded rejection sampler that only
//     yields values satisfying every Requirement, left to right.
//   - Map:    wraps a strategy in a Facility, an ordered chain of Converters
//     applied to every produced value.
//   - Or:     joins strategies into a Union that picks one alternative uniformly
//     at random per call. Unions are always flat.
//
// Every combinator returns a NEW strategy that owns a clone of its operands; the
// operands stay usable and unaffected. Cloning goes through Strategy.Clone, which
// each concrete type implements with CloneOf (a copy of its own concrete type
// returned through the abstract interface).
//
// Failure model:
//
//   - ErrOutOfCycles (as *OutOfCyclesError) is the only error the core raises
//     during generation. It means a Sieve spent its whole attempt bound without
//     finding an acceptable value. It propagates unchanged through enclosing
//     Mapped/Union/Filtered wrappers; nothing retries across composition
//     boundaries.
//   - Programmer errors (nil strategies, nil predicates, meaningless options)
//     panic at construction time, the same way option constructors do.
//
// Configuration (no hidden globals, everything flows through options):
//
//   - WithMaxAttempts: Sieve attempt bound (DefaultMaxAttempts).
//   - WithSeed/WithRand/WithSource: randomness; NewSource is safe for concurrent use.
//   - WithLogger: *zap.Logger (default no-op).
//   - WithMetrics: Prometheus collectors built by NewMetrics.
//
// A combinator applied to a Filtered, Mapped or Union starts from that
// receiver's configuration; options passed to the call apply on top.
//
// Concurrency:
//
//   - Combinators never mutate after construction, so one strategy may be shared
//     by many goroutines. The only shared resource is the Source; both the default
//     process source and NewSource serialize access internally.
package strategy
