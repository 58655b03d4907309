// Package cauldron is a toolkit for generating random values that satisfy
// declared constraints, aimed at property-based and fuzz-style testing.
//
// Everything is built from one abstraction, strategy.Strategy[T]: a reusable,
// clonable producer of T values. Strategies compose:
//
//	strategy/   — Strategy, Requirement, Converter, Sieve, Facility and the
//	              Filter / Map / Or combinators (Filtered, Mapped, Union)
//	primitives/ — leaf producers: booleans, characters, integers, strings,
//	              vectors, identifiers, UUIDs
//	builder/    — composite structs assembled from per-field strategies
//	recipes/    — ready-made requirements (IsLower, InRange, Not, ...) and
//	              converters (ToUpper, Append, Negate, ...)
//	config/     — YAML/env settings turned into strategy options
//
// Quick example:
//
//	digits, _ := primitives.NewIntegers(0, 9)
//	odd := strategy.Filter[int](digits, recipes.Odd[int]())
//	v, err := odd.Generate() // 1, 3, 5, 7 or 9
//
// Filters are bounded rejection sampling: when no candidate passes within the
// attempt bound, Generate returns an error matching strategy.ErrOutOfCycles
// instead of looping forever.
//
//	go get github.com/katalvlaran/cauldron
package cauldron
