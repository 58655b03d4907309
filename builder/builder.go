// SPDX-License-Identifier: MIT
// Package: cauldron/builder

package builder

import (
	"fmt"

	"github.com/katalvlaran/cauldron/strategy"
)

// MethodBuilder prefixes field errors.
const MethodBuilder = "Builder"

// Builder produces T values by applying its fields in order.
type Builder[T any] struct {
	start  func() T
	fields []Field[T]
}

// New returns a Builder over fields. Construct fields set the starting value;
// all others are applied in the given order. Panics on a nil field.
func New[T any](fields ...Field[T]) *Builder[T] {
	b := &Builder[T]{fields: make([]Field[T], 0, len(fields))}
	for i, f := range fields {
		switch f := f.(type) {
		case nil:
			panic(fmt.Sprintf("builder: New(nil field at index %d)", i))
		case *constructor[T]:
			b.start = f.make
		default:
			b.fields = append(b.fields, f)
		}
	}

	return b
}

// Generate assembles one T. On failure it returns the zero T and the first
// field error, wrapped as "Builder: field <i>: <err>".
// Complexity: O(F) field draws.
func (b *Builder[T]) Generate() (T, error) {
	var v T
	if b.start != nil {
		v = b.start()
	}
	for i, f := range b.fields {
		if err := f.apply(&v); err != nil {
			var zero T
			return zero, fmt.Errorf("%s: field %d: %w", MethodBuilder, i, err)
		}
	}

	return v, nil
}

// Clone deep-clones every field.
func (b *Builder[T]) Clone() strategy.Strategy[T] {
	dup := strategy.CloneOf[T](b).(*Builder[T])
	dup.fields = make([]Field[T], len(b.fields))
	for i, f := range b.fields {
		dup.fields[i] = f.clone()
	}

	return dup
}

// Len returns the number of value fields (Construct hooks excluded).
func (b *Builder[T]) Len() int { return len(b.fields) }

// With returns a new Builder holding b's fields (cloned) followed by more.
// b is not modified.
func (b *Builder[T]) With(more ...Field[T]) *Builder[T] {
	fields := make([]Field[T], 0, len(b.fields)+len(more)+1)
	if b.start != nil {
		fields = append(fields, &constructor[T]{make: b.start})
	}
	for _, f := range b.fields {
		fields = append(fields, f.clone())
	}

	return New(append(fields, more...)...)
}
