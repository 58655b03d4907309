// SPDX-License-Identifier: MIT
// Package: cauldron/recipes
//
// converters.go — ready-made converters.
//
// cases.Caser keeps per-call state and must not be shared between goroutines;
// the case converters build a Caser per Apply so a single Mapped strategy can
// be generated from concurrently.

package recipes

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/cauldron/strategy"
)

// Signed is the set of kinds Negate accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ToUpper maps strings to upper case using language-neutral Unicode rules.
func ToUpper() strategy.Converter[string] {
	return ToUpperIn(language.Und)
}

// ToUpperIn maps strings to upper case using the rules of tag
// (e.g. Turkish dotted/dotless i).
func ToUpperIn(tag language.Tag) strategy.Converter[string] {
	return strategy.NewConverter("upper("+tag.String()+")", func(s string) string {
		return cases.Upper(tag).String(s)
	})
}

// ToLower maps strings to lower case using language-neutral Unicode rules.
func ToLower() strategy.Converter[string] {
	return ToLowerIn(language.Und)
}

// ToLowerIn maps strings to lower case using the rules of tag.
func ToLowerIn(tag language.Tag) strategy.Converter[string] {
	return strategy.NewConverter("lower("+tag.String()+")", func(s string) string {
		return cases.Lower(tag).String(s)
	})
}

// Append adds suffix to every string.
func Append(suffix string) strategy.Converter[string] {
	return strategy.NewConverter(fmt.Sprintf("append(%q)", suffix), func(s string) string { return s + suffix })
}

// Negate flips the sign. For the minimum value of a signed integer kind the
// result wraps to itself.
func Negate[N Signed]() strategy.Converter[N] {
	return strategy.NewConverter("negate", func(v N) N { return -v })
}

// Constant replaces every value with v.
func Constant[T any](v T) strategy.Converter[T] {
	return strategy.NewConverter(fmt.Sprintf("constant(%v)", v), func(T) T { return v })
}
