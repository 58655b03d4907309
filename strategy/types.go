// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// types.go — Strategy contract, the CloneOf helper, Requirement and Converter.
//
// Contract:
//   • Generate is callable repeatedly; each call is an independent draw.
//   • Clone returns a new, independently owned strategy of the SAME concrete type.
//   • Requirement/Converter are immutable named wrappers around pure callables.

package strategy

import "fmt"

// Strategy produces values of type T.
//
// Implementations must be safe to call repeatedly and must not mutate their own
// composition state in Generate. Clone must preserve the concrete type; the usual
// implementation is:
//
//	func (s *Mine) Clone() strategy.Strategy[T] { return strategy.CloneOf[T](s) }
type Strategy[T any] interface {
	// Generate produces one value, or an error (typically ErrOutOfCycles).
	Generate() (T, error)

	// Clone returns a behaviorally identical copy through the abstract interface.
	Clone() Strategy[T]
}

// CloneOf copies the struct behind p and returns the copy as Strategy[T].
// The copy is shallow: owned slices and sub-strategies are shared unless the
// caller replaces them afterwards (see Union.Clone for a deep variant).
//
// Typical call: strategy.CloneOf[T](s) — V and P are inferred from s.
// Complexity: O(size of V).
func CloneOf[T any, V any, P interface {
	*V
	Strategy[T]
}](p P) Strategy[T] {
	dup := *p // copy-construct the concrete value

	return P(&dup)
}

// Requirement is a named predicate over T used by Sieve.
type Requirement[T any] struct {
	name  string
	check func(T) bool
}

// NewRequirement wraps check under the given name.
// Panics on a nil predicate: a requirement without a check is a programmer error.
func NewRequirement[T any](name string, check func(T) bool) Requirement[T] {
	if check == nil {
		panic(fmt.Sprintf("strategy: NewRequirement(%q, nil)", name))
	}

	return Requirement[T]{name: name, check: check}
}

// Name returns the label used in diagnostics.
func (r Requirement[T]) Name() string { return r.name }

// Check reports whether v satisfies the requirement.
func (r Requirement[T]) Check(v T) bool { return r.check(v) }

// String implements fmt.Stringer.
func (r Requirement[T]) String() string { return "requirement(" + r.name + ")" }

// Converter is a named transform T → T used by Facility.
type Converter[T any] struct {
	name    string
	convert func(T) T
}

// NewConverter wraps convert under the given name.
// Panics on a nil transform.
func NewConverter[T any](name string, convert func(T) T) Converter[T] {
	if convert == nil {
		panic(fmt.Sprintf("strategy: NewConverter(%q, nil)", name))
	}

	return Converter[T]{name: name, convert: convert}
}

// Name returns the label used in diagnostics.
func (c Converter[T]) Name() string { return c.name }

// Apply transforms v.
func (c Converter[T]) Apply(v T) T { return c.convert(v) }

// String implements fmt.Stringer.
func (c Converter[T]) String() string { return "converter(" + c.name + ")" }
