// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// facility.go — ordered converter chain.
//
// Contract:
//   • Convert(v) = cN-1(...c1(c0(v))...); insertion order is application order.
//   • Conversion is total: no filtering, no retry, no error state.
//   • Expand never mutates the receiver.

package strategy

// Facility is an immutable, ordered sequence of converters.
type Facility[T any] struct {
	converters []Converter[T]
}

// NewFacility returns a Facility applying converters in the given order.
func NewFacility[T any](converters ...Converter[T]) Facility[T] {
	convs := make([]Converter[T], len(converters))
	copy(convs, converters)

	return Facility[T]{converters: convs}
}

// Expand returns a new Facility equal to f with c appended.
func (f Facility[T]) Expand(c Converter[T]) Facility[T] {
	convs := make([]Converter[T], len(f.converters), len(f.converters)+1)
	copy(convs, f.converters)

	return Facility[T]{converters: append(convs, c)}
}

// Len returns the number of converters.
func (f Facility[T]) Len() int { return len(f.converters) }

// Converters returns a copy of the converters in application order.
func (f Facility[T]) Converters() []Converter[T] {
	out := make([]Converter[T], len(f.converters))
	copy(out, f.converters)

	return out
}

// Convert folds the converters over v left to right.
// Complexity: O(N) converter calls.
func (f Facility[T]) Convert(v T) T {
	for _, c := range f.converters {
		v = c.Apply(v)
	}

	return v
}
