// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// errors.go — sentinel errors for the strategy package.
//
// Error policy:
//   • ErrOutOfCycles is the only runtime error raised by the combinator core.
//   • It is surfaced as *OutOfCyclesError (diagnostics) which unwraps to the sentinel;
//     callers branch with errors.Is(err, ErrOutOfCycles) or errors.As for details.
//   • Leaf validation errors belong to leaf packages and pass through untouched.

package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfCycles indicates that a Sieve exhausted its attempt bound without
// producing a value that satisfies all of its requirements. The requirements are
// either contradictory or too restrictive for the underlying producer.
// Usage: if errors.Is(err, ErrOutOfCycles) { /* loosen filters */ }.
var ErrOutOfCycles = errors.New("strategy: out of cycles")

// OutOfCyclesError carries the diagnostics of one exhausted Sieve.
type OutOfCyclesError struct {
	// Attempts is the number of producer calls spent (equals the bound).
	Attempts int

	// Requirements lists requirement names in evaluation order.
	Requirements []string

	// Rejections[i] counts candidates rejected by Requirements[i].
	// Short-circuiting means a candidate is charged to the first failing requirement only.
	Rejections []int
}

// Error implements the error interface.
func (e *OutOfCyclesError) Error() string {
	parts := make([]string, len(e.Requirements))
	for i, name := range e.Requirements {
		parts[i] = fmt.Sprintf("%s=%d", name, e.Rejections[i])
	}

	return fmt.Sprintf("%v: no value accepted after %d attempts (rejections: %s)",
		ErrOutOfCycles, e.Attempts, strings.Join(parts, ", "))
}

// Unwrap exposes ErrOutOfCycles to errors.Is.
func (e *OutOfCyclesError) Unwrap() error {
	return ErrOutOfCycles
}

// Strictest returns the name of the requirement that rejected the most
// candidates, or "" if nothing was rejected.
func (e *OutOfCyclesError) Strictest() string {
	best, name := 0, ""
	for i, n := range e.Rejections {
		if n > best {
			best, name = n, e.Requirements[i]
		}
	}

	return name
}
