// SPDX-License-Identifier: MIT
// Package: cauldron/primitives
//
// validators.go — parameter contracts shared by leaf constructors.
// Each helper returns "<Method>: <detail>: <sentinel>" on violation.

package primitives

import "fmt"

// Probability bounds for Booleans, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons' negations and is rejected too.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %v: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}

// validateDomain enforces a non-empty rune domain.
func validateDomain(method string, domain []rune) error {
	if len(domain) == 0 {
		return fmt.Errorf("%s: characters container should not be empty: %w", method, ErrEmptyDomain)
	}

	return nil
}

// validateLength rejects a negative length produced at generation time.
func validateLength(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: produced length %d: %w", method, n, ErrNegativeLength)
	}

	return nil
}
