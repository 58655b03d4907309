// SPDX-License-Identifier: MIT
// Package: cauldron/primitives

package primitives

import "github.com/katalvlaran/cauldron/strategy"

// Common character domains.
const (
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits       = "0123456789"
	Letters      = LowerLetters + UpperLetters
)

// Characters yields runes drawn uniformly from a fixed domain.
// Duplicate runes in the domain weigh proportionally more.
type Characters struct {
	domain []rune
	source strategy.Source
}

// NewCharacters returns a Characters strategy over the runes of domain.
// Returns ErrEmptyDomain when domain has no runes.
func NewCharacters(domain string, opts ...strategy.Option) (*Characters, error) {
	runes := []rune(domain)
	if err := validateDomain(MethodCharacters, runes); err != nil {
		return nil, err
	}

	return &Characters{domain: runes, source: strategy.Resolve(opts...).Source()}, nil
}

// Generate never fails.
func (c *Characters) Generate() (rune, error) {
	return c.domain[c.source.Intn(len(c.domain))], nil
}

// Clone shares the domain, which is never mutated.
func (c *Characters) Clone() strategy.Strategy[rune] { return strategy.CloneOf[rune](c) }

// Domain returns the domain as a string.
func (c *Characters) Domain() string { return string(c.domain) }
