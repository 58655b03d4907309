// SPDX-License-Identifier: MIT
// Package: cauldron/builder
//
// field.go — Field[T]: one strategy bound to one setter on *T.
//
// Field is sealed (unexported methods); Set and Construct are the only ways to
// make one. Construct is a marker field consumed by New rather than applied.

package builder

import "github.com/katalvlaran/cauldron/strategy"

// Field contributes one drawn value to a T under construction.
type Field[T any] interface {
	// apply draws one value and stores it into dst.
	apply(dst *T) error
	// clone returns an independent copy (its strategy cloned).
	clone() Field[T]
}

// setter binds a Strategy[V] to a setter on *T.
type setter[T, V any] struct {
	source strategy.Strategy[V]
	set    func(*T, V)
}

// Set binds s to set. The strategy is cloned, so later changes to s's
// configuration do not reach the builder. Panics if s or set is nil.
func Set[T, V any](s strategy.Strategy[V], set func(*T, V)) Field[T] {
	if s == nil {
		panic("builder: Set(nil strategy)")
	}
	if set == nil {
		panic("builder: Set(nil setter)")
	}

	return &setter[T, V]{source: s.Clone(), set: set}
}

func (f *setter[T, V]) apply(dst *T) error {
	v, err := f.source.Generate()
	if err != nil {
		return err
	}
	f.set(dst, v)

	return nil
}

func (f *setter[T, V]) clone() Field[T] {
	return &setter[T, V]{source: f.source.Clone(), set: f.set}
}

// constructor replaces the zero value as the starting point of assembly.
type constructor[T any] struct {
	make func() T
}

// Construct makes fn the source of the initial T, e.g. to pre-allocate maps or
// set fields that no strategy covers. If several are given, the last one wins.
// Panics if fn is nil.
func Construct[T any](fn func() T) Field[T] {
	if fn == nil {
		panic("builder: Construct(nil)")
	}

	return &constructor[T]{make: fn}
}

// apply resets dst to a freshly constructed value.
func (c *constructor[T]) apply(dst *T) error {
	*dst = c.make()

	return nil
}

func (c *constructor[T]) clone() Field[T] { return c }
