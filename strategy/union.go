// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// union.go — Union[T]: uniform random choice among alternatives.
//
// Invariants:
//   • len(alternatives) ≥ 1 at all times (constructors enforce ≥ 2 operands).
//   • No alternative is itself a *Union[T]: joining flattens (associativity is
//     structural, not only semantic).
//   • Each Generate picks index i with probability 1/N, independent of history.
//   • An error from the picked alternative is returned as-is; no fallback to siblings.

package strategy

// Union picks one owned alternative uniformly at random per call.
type Union[T any] struct {
	alternatives []Strategy[T]
	cfg          config
}

// newUnion builds a flat Union from operands, cloning every leaf alternative.
func newUnion[T any](cfg config, operands ...Strategy[T]) *Union[T] {
	alts := make([]Strategy[T], 0, len(operands))
	for _, s := range operands {
		alts = appendFlat(alts, s)
	}

	return &Union[T]{alternatives: alts, cfg: cfg}
}

// appendFlat appends clones of s's alternatives (if s is a Union) or a clone of s.
func appendFlat[T any](dst []Strategy[T], s Strategy[T]) []Strategy[T] {
	if u, ok := s.(*Union[T]); ok {
		for _, alt := range u.alternatives {
			dst = append(dst, alt.Clone())
		}
		return dst
	}

	return append(dst, s.Clone())
}

// Generate delegates to a uniformly chosen alternative.
func (u *Union[T]) Generate() (T, error) {
	i := u.cfg.source.Intn(len(u.alternatives))
	u.cfg.metrics.observePick()

	return u.alternatives[i].Generate()
}

// Clone deep-copies the alternatives, preserving each concrete type.
// Complexity: O(N) Clone calls.
func (u *Union[T]) Clone() Strategy[T] {
	dup := CloneOf[T](u).(*Union[T])
	dup.alternatives = make([]Strategy[T], len(u.alternatives))
	for i, alt := range u.alternatives {
		dup.alternatives[i] = alt.Clone()
	}

	return dup
}

func (u *Union[T]) settings() config { return u.cfg }

// Len returns the number of alternatives.
func (u *Union[T]) Len() int { return len(u.alternatives) }

// Strategies returns clones of the alternatives in order.
func (u *Union[T]) Strategies() []Strategy[T] {
	out := make([]Strategy[T], len(u.alternatives))
	for i, alt := range u.alternatives {
		out[i] = alt.Clone()
	}

	return out
}

// or returns a new Union holding u's alternatives followed by other's
// (flattened when other is a Union).
func (u *Union[T]) or(other Strategy[T], opts ...Option) *Union[T] {
	return newUnion(u.cfg.with(opts...), u, other)
}
