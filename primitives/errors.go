// SPDX-License-Identifier: MIT
// Package: cauldron/primitives
//
// errors.go — sentinel errors for leaf strategies.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the Method* names.
//   • Construction-time errors are returned by New* constructors; generation-time
//     errors only arise from values produced by caller-supplied sub-strategies.

package primitives

import "errors"

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("primitives: probability out of range")

// ErrEmptyDomain indicates an empty character domain.
var ErrEmptyDomain = errors.New("primitives: domain is empty")

// ErrInvalidRange indicates min > max.
var ErrInvalidRange = errors.New("primitives: invalid range")

// ErrNegativeLength indicates a length/size sub-strategy produced a negative value.
var ErrNegativeLength = errors.New("primitives: negative length")

// ErrIndexOutOfRange indicates an index a LabelFn cannot render.
var ErrIndexOutOfRange = errors.New("primitives: index out of range")

// Method names used as error context prefixes.
const (
	MethodBooleans    = "Booleans"
	MethodCharacters  = "Characters"
	MethodIntegers    = "Integers"
	MethodStrings     = "Strings"
	MethodVectors     = "Vectors"
	MethodIdentifiers = "Identifiers"
	MethodUUIDs       = "UUIDs"
)
