// Package recipes collects ready-made requirements and converters for the
// value types most strategies produce: booleans, runes, strings and numbers.
//
// Requirements:
//
//   - IsTrue, IsFalse:                  bool.
//   - IsLower, IsUpper, IsAlphabetic:   rune, Unicode-aware.
//   - NonEmpty:                         string.
//   - InRange, Even, Odd:               ordered / integer values.
//   - Not:                              negation of any requirement.
//
// Converters:
//
//   - ToUpper, ToLower:  Unicode case mapping via golang.org/x/text/cases,
//     with language-specific variants ToUpperIn/ToLowerIn.
//   - Append:            string suffix.
//   - Negate:            arithmetic negation.
//   - Constant:          replace any value with a fixed one.
//
// Every helper returns a new, named value; names appear in OutOfCycles
// diagnostics, so they describe the predicate ("in[1,9]", "not(even)").
package recipes
