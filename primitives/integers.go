// SPDX-License-Identifier: MIT
// Package: cauldron/primitives
//
// integers.go — uniform integers over an inclusive range of any integer kind.
//
// Arithmetic runs in uint64 two's complement: span = uint64(hi) - uint64(lo)
// is exact for every signed and unsigned kind, and span+1 wraps to 0 only for
// the full 64-bit range, which strategy.Uint64n treats as "any value".

package primitives

import (
	"fmt"

	"github.com/katalvlaran/cauldron/strategy"
)

// Integer is the set of Go integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers yields integers uniformly from [lo,hi].
type Integers[I Integer] struct {
	lo, hi I
	source strategy.Source
}

// NewIntegers returns an Integers strategy over [lo,hi].
// Returns ErrInvalidRange if lo > hi.
func NewIntegers[I Integer](lo, hi I, opts ...strategy.Option) (*Integers[I], error) {
	if lo > hi {
		return nil, fmt.Errorf("%s: min %v > max %v: %w", MethodIntegers, lo, hi, ErrInvalidRange)
	}

	return &Integers[I]{lo: lo, hi: hi, source: strategy.Resolve(opts...).Source()}, nil
}

// Generate never fails.
func (g *Integers[I]) Generate() (I, error) {
	span := uint64(g.hi) - uint64(g.lo)
	offset := strategy.Uint64n(g.source, span+1)

	return I(uint64(g.lo) + offset), nil
}

func (g *Integers[I]) Clone() strategy.Strategy[I] { return strategy.CloneOf[I](g) }

// Bounds returns the inclusive range.
func (g *Integers[I]) Bounds() (I, I) { return g.lo, g.hi }
