// SPDX-License-Identifier: MIT
// Package: cauldron/recipes

package recipes

import (
	"cmp"
	"fmt"
	"unicode"

	"github.com/katalvlaran/cauldron/primitives"
	"github.com/katalvlaran/cauldron/strategy"
)

// IsTrue accepts true.
func IsTrue() strategy.Requirement[bool] {
	return strategy.NewRequirement("true", func(b bool) bool { return b })
}

// IsFalse accepts false.
func IsFalse() strategy.Requirement[bool] {
	return strategy.NewRequirement("false", func(b bool) bool { return !b })
}

// IsLower accepts lowercase letters.
func IsLower() strategy.Requirement[rune] {
	return strategy.NewRequirement("lower", unicode.IsLower)
}

// IsUpper accepts uppercase letters.
func IsUpper() strategy.Requirement[rune] {
	return strategy.NewRequirement("upper", unicode.IsUpper)
}

// IsAlphabetic accepts letters of any script.
func IsAlphabetic() strategy.Requirement[rune] {
	return strategy.NewRequirement("alphabetic", unicode.IsLetter)
}

// NonEmpty accepts strings with at least one byte.
func NonEmpty() strategy.Requirement[string] {
	return strategy.NewRequirement("non-empty", func(s string) bool { return s != "" })
}

// InRange accepts values in [lo,hi]. Panics if lo > hi.
func InRange[T cmp.Ordered](lo, hi T) strategy.Requirement[T] {
	if cmp.Less(hi, lo) {
		panic(fmt.Sprintf("recipes: InRange(%v, %v): lo > hi", lo, hi))
	}
	name := fmt.Sprintf("in[%v,%v]", lo, hi)

	return strategy.NewRequirement(name, func(v T) bool { return v >= lo && v <= hi })
}

// Even accepts multiples of two.
func Even[I primitives.Integer]() strategy.Requirement[I] {
	return strategy.NewRequirement("even", func(v I) bool { return v%2 == 0 })
}

// Odd accepts non-multiples of two, negative ones included.
func Odd[I primitives.Integer]() strategy.Requirement[I] {
	return strategy.NewRequirement("odd", func(v I) bool { return v%2 != 0 })
}

// Not inverts r. The result is named "not(<r>)".
func Not[T any](r strategy.Requirement[T]) strategy.Requirement[T] {
	return strategy.NewRequirement("not("+r.Name()+")", func(v T) bool { return !r.Check(v) })
}
