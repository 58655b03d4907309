// Package primitives provides leaf strategies: the producers every composite
// strategy eventually bottoms out in.
//
// The package offers:
//
//   - Booleans:    true with a fixed probability p ∈ [0,1].
//   - Characters:  a rune drawn uniformly from a non-empty domain.
//   - Integers:    a uniform integer in [min,max] for every Go integer kind.
//   - Strings:     a string whose length and runes come from two sub-strategies.
//   - Vectors:     a slice whose size and elements come from two sub-strategies.
//   - Identifiers: a label rendered from a drawn index through a LabelFn scheme
//     (decimal, symbol, Excel column, alphanumeric, hex, prefixed).
//   - UUIDs:       RFC 4122 version 4 UUIDs built from the injected Source.
//
// Guarantees:
//
//   - Fast-fail validation: constructors return sentinel errors (ErrEmptyDomain,
//     ErrInvalidProbability, ErrInvalidRange) before any value is requested.
//   - Randomness comes from strategy options (WithSeed/WithSource/WithRand);
//     sharing one strategy.NewSource makes a whole tree reproducible.
//   - Every leaf implements strategy.Strategy and composes with Filter/Map/Or.
package primitives
