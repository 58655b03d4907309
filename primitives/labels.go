// SPDX-License-Identifier: MIT
// Package: cauldron/primitives
//
// labels.go — index-to-label schemes for Identifiers.
//
// A LabelFn is pure and deterministic: the same idx always renders the same
// label. Unlike a construction-time ID scheme, a LabelFn runs during Generate
// on indices drawn from a sub-strategy, so it reports unrenderable indices
// through ErrIndexOutOfRange instead of panicking.

package primitives

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of uppercase Latin letters.
const alphabetSize = 26

// LabelFn renders a label from a zero-based index.
type LabelFn func(idx int) (string, error)

// DecimalLabel renders idx in base 10: 0→"0", 42→"42".
// Accepts negative indices ("-3").
func DecimalLabel(idx int) (string, error) {
	return strconv.Itoa(idx), nil
}

// SymbolLabel renders idx ∈ [0,25] as an uppercase letter: 0→"A", 25→"Z".
func SymbolLabel(idx int) (string, error) {
	if idx < 0 || idx >= alphabetSize {
		return "", fmt.Errorf("SymbolLabel: idx must be in [0,%d], got %d: %w", alphabetSize-1, idx, ErrIndexOutOfRange)
	}

	return string('A' + rune(idx)), nil
}

// AlphanumericLabel renders idx ≥ 0 in base 36: 10→"a", 36→"10".
func AlphanumericLabel(idx int) (string, error) {
	if err := nonNegative("AlphanumericLabel", idx); err != nil {
		return "", err
	}

	return strconv.FormatInt(int64(idx), 36), nil
}

// ExcelColumnLabel renders idx ≥ 0 as a spreadsheet column: 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
func ExcelColumnLabel(idx int) (string, error) {
	if err := nonNegative("ExcelColumnLabel", idx); err != nil {
		return "", err
	}
	var buf []byte
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		buf = append(buf, byte('A'+i%alphabetSize))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf), nil
}

// HexLabel renders idx ≥ 0 in lowercase base 16: 255→"ff".
func HexLabel(idx int) (string, error) {
	if err := nonNegative("HexLabel", idx); err != nil {
		return "", err
	}

	return strconv.FormatInt(int64(idx), 16), nil
}

// PrefixedLabel returns a LabelFn rendering prefix + decimal idx: "v0", "v1", ...
func PrefixedLabel(prefix string) LabelFn {
	return func(idx int) (string, error) {
		if err := nonNegative("PrefixedLabel", idx); err != nil {
			return "", err
		}

		return prefix + strconv.Itoa(idx), nil
	}
}

func nonNegative(method string, idx int) error {
	if idx < 0 {
		return fmt.Errorf("%s: idx must be ≥ 0, got %d: %w", method, idx, ErrIndexOutOfRange)
	}

	return nil
}
