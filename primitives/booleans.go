// SPDX-License-Identifier: MIT
// Package: cauldron/primitives

package primitives

import "github.com/katalvlaran/cauldron/strategy"

// Booleans yields true with probability p.
type Booleans struct {
	p      float64
	source strategy.Source
}

// NewBooleans returns a Booleans strategy. p must lie in [0,1].
// p = 0 and p = 1 are degenerate but valid (always false / always true).
func NewBooleans(p float64, opts ...strategy.Option) (*Booleans, error) {
	if err := validateProbability(MethodBooleans, p); err != nil {
		return nil, err
	}

	return &Booleans{p: p, source: strategy.Resolve(opts...).Source()}, nil
}

// Generate never fails.
func (b *Booleans) Generate() (bool, error) {
	return b.source.Float64() < b.p, nil
}

func (b *Booleans) Clone() strategy.Strategy[bool] { return strategy.CloneOf[bool](b) }

// Probability returns p.
func (b *Booleans) Probability() float64 { return b.p }
