// SPDX-License-Identifier: MIT
// Package: cauldron/primitives

package primitives

import (
	"fmt"

	"github.com/katalvlaran/cauldron/strategy"
)

// Identifiers yields labels rendered by a LabelFn from indices drawn by a
// sub-strategy. Combine with an Integers index strategy for bounded label sets:
//
//	idx, _ := primitives.NewIntegers(0, 25)
//	ids := primitives.NewIdentifiers(idx, primitives.SymbolLabel) // "A".."Z"
type Identifiers struct {
	indices strategy.Strategy[int]
	label   LabelFn
}

// NewIdentifiers returns an Identifiers strategy. A nil label selects
// DecimalLabel. Panics if indices is nil.
func NewIdentifiers(indices strategy.Strategy[int], label LabelFn) *Identifiers {
	if indices == nil {
		panic("primitives: NewIdentifiers(nil strategy)")
	}
	if label == nil {
		label = DecimalLabel
	}

	return &Identifiers{indices: indices.Clone(), label: label}
}

// Generate draws an index and renders it. Indices the LabelFn cannot render
// surface as ErrIndexOutOfRange.
func (s *Identifiers) Generate() (string, error) {
	idx, err := s.indices.Generate()
	if err != nil {
		return "", fmt.Errorf("%s: index: %w", MethodIdentifiers, err)
	}
	id, err := s.label(idx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", MethodIdentifiers, err)
	}

	return id, nil
}

func (s *Identifiers) Clone() strategy.Strategy[string] { return strategy.CloneOf[string](s) }
