// SPDX-License-Identifier: MIT
// Package: cauldron/primitives
//
// collections.go — Strings and Vectors: sized sequences assembled from two
// sub-strategies (one for the size, one for each element).
//
// Ownership: the sub-strategies are cloned on construction and shared by
// Clone; both are treated as immutable, like the base of a Filtered strategy.
// Errors: the first sub-strategy error is returned wrapped with its position;
// a negative size yields ErrNegativeLength.

package primitives

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cauldron/strategy"
)

// Strings yields strings whose rune count comes from lengths and whose runes
// come from alphabet.
type Strings struct {
	lengths  strategy.Strategy[int]
	alphabet strategy.Strategy[rune]
}

// NewStrings returns a Strings strategy. Panics if either argument is nil.
func NewStrings(lengths strategy.Strategy[int], alphabet strategy.Strategy[rune]) *Strings {
	if lengths == nil || alphabet == nil {
		panic("primitives: NewStrings(nil strategy)")
	}

	return &Strings{lengths: lengths.Clone(), alphabet: alphabet.Clone()}
}

// Generate draws a length, then that many runes.
func (s *Strings) Generate() (string, error) {
	n, err := s.lengths.Generate()
	if err != nil {
		return "", fmt.Errorf("%s: length: %w", MethodStrings, err)
	}
	if err = validateLength(MethodStrings, n); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		r, err := s.alphabet.Generate()
		if err != nil {
			return "", fmt.Errorf("%s: rune %d of %d: %w", MethodStrings, i+1, n, err)
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

func (s *Strings) Clone() strategy.Strategy[string] { return strategy.CloneOf[string](s) }

// Vectors yields slices whose size comes from sizes and whose elements come
// from elements. Every Generate returns a freshly allocated slice.
type Vectors[T any] struct {
	sizes    strategy.Strategy[int]
	elements strategy.Strategy[T]
}

// NewVectors returns a Vectors strategy. Panics if either argument is nil.
func NewVectors[T any](sizes strategy.Strategy[int], elements strategy.Strategy[T]) *Vectors[T] {
	if sizes == nil || elements == nil {
		panic("primitives: NewVectors(nil strategy)")
	}

	return &Vectors[T]{sizes: sizes.Clone(), elements: elements.Clone()}
}

// Generate draws a size, then that many elements.
func (v *Vectors[T]) Generate() ([]T, error) {
	n, err := v.sizes.Generate()
	if err != nil {
		return nil, fmt.Errorf("%s: size: %w", MethodVectors, err)
	}
	if err = validateLength(MethodVectors, n); err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		if out[i], err = v.elements.Generate(); err != nil {
			return nil, fmt.Errorf("%s: element %d of %d: %w", MethodVectors, i+1, n, err)
		}
	}

	return out, nil
}

func (v *Vectors[T]) Clone() strategy.Strategy[[]T] { return strategy.CloneOf[[]T](v) }
