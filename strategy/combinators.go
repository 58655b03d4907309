// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// combinators.go — public entry-points: Filter, Map, Or, OneOf, plus small
// adapters (Just, FromFunc) and the Sample helper.
//
// Go has no generic methods, so the default combinator behavior lives in
// package functions that upgrade to the specialized behavior of the receiver's
// concrete type when it has one:
//   • Filter on *Filtered expands its Sieve (sub-strategy shared).
//   • Map on *Mapped expands its Facility (sub-strategy shared).
//   • Or on *Union flattens.
// Everything else is wrapped around a Clone of the operand. Options always
// apply on top of the receiver's configuration when the receiver is a
// Filtered, Mapped or Union, and on top of the defaults otherwise.

package strategy

import "fmt"

// Filter returns a strategy yielding only values of s that satisfy r.
// Panics if s is nil.
func Filter[T any](s Strategy[T], r Requirement[T], opts ...Option) *Filtered[T] {
	mustStrategy("Filter", s)
	if f, ok := s.(*Filtered[T]); ok {
		return f.filter(r, opts...)
	}
	cfg := inherit(s, opts...)

	return &Filtered[T]{
		base:  s.Clone(),
		sieve: NewSieve(cfg.maxAttempts, r),
		cfg:   cfg,
	}
}

// FilterFunc is Filter with an inline predicate.
func FilterFunc[T any](s Strategy[T], name string, check func(T) bool, opts ...Option) *Filtered[T] {
	return Filter(s, NewRequirement(name, check), opts...)
}

// Map returns a strategy applying c to every value of s, after any converters
// already attached to s. Panics if s is nil.
func Map[T any](s Strategy[T], c Converter[T], opts ...Option) *Mapped[T] {
	mustStrategy("Map", s)
	if m, ok := s.(*Mapped[T]); ok {
		return m.mapping(c, opts...)
	}

	return &Mapped[T]{
		base:     s.Clone(),
		facility: NewFacility(c),
		cfg:      inherit(s, opts...),
	}
}

// MapFunc is Map with an inline transform.
func MapFunc[T any](s Strategy[T], name string, convert func(T) T, opts ...Option) *Mapped[T] {
	return Map(s, NewConverter(name, convert), opts...)
}

// Or joins a and b into a flat Union, configured from a. Panics if a or b is nil.
func Or[T any](a, b Strategy[T], opts ...Option) *Union[T] {
	mustStrategy("Or", a)
	mustStrategy("Or", b)
	if u, ok := a.(*Union[T]); ok {
		return u.or(b, opts...)
	}

	return newUnion(inherit(a, opts...), a, b)
}

// OneOf joins two or more strategies into a flat Union with default configuration.
// Panics on fewer than two strategies or a nil strategy.
func OneOf[T any](strategies ...Strategy[T]) *Union[T] {
	return OneOfWith(nil, strategies...)
}

// OneOfWith is OneOf with explicit options.
func OneOfWith[T any](opts []Option, strategies ...Strategy[T]) *Union[T] {
	if len(strategies) < 2 {
		panic(fmt.Sprintf("strategy: OneOf needs ≥ 2 strategies, got %d", len(strategies)))
	}
	for _, s := range strategies {
		mustStrategy("OneOf", s)
	}

	return newUnion(newConfig(opts...), strategies...)
}

// Sample draws n values from s, stopping at the first error.
func Sample[T any](s Strategy[T], n int) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := s.Generate()
		if err != nil {
			return out, fmt.Errorf("Sample: draw %d of %d: %w", i+1, n, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// mustStrategy panics on a nil operand (programmer error).
func mustStrategy[T any](method string, s Strategy[T]) {
	if s == nil {
		panic("strategy: " + method + "(nil strategy)")
	}
}

// just always produces the same value.
type just[T any] struct {
	value T
}

// Just returns a strategy that always yields v.
func Just[T any](v T) Strategy[T] {
	return &just[T]{value: v}
}

func (j *just[T]) Generate() (T, error) { return j.value, nil }
func (j *just[T]) Clone() Strategy[T]   { return CloneOf[T](j) }

// funcStrategy adapts a producer function.
type funcStrategy[T any] struct {
	name    string
	produce func() (T, error)
}

// FromFunc adapts produce into a Strategy. produce must be safe for repeated
// (and, if shared, concurrent) calls. Panics on nil.
func FromFunc[T any](name string, produce func() (T, error)) Strategy[T] {
	if produce == nil {
		panic(fmt.Sprintf("strategy: FromFunc(%q, nil)", name))
	}

	return &funcStrategy[T]{name: name, produce: produce}
}

func (f *funcStrategy[T]) Generate() (T, error) { return f.produce() }
func (f *funcStrategy[T]) Clone() Strategy[T]   { return CloneOf[T](f) }
func (f *funcStrategy[T]) String() string       { return "func(" + f.name + ")" }
