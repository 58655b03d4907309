// SPDX-License-Identifier: MIT
// Package: cauldron/strategy
//
// mapped.go — Mapped[T]: one sub-strategy behind a Facility.
//
// Contract:
//   • Every produced value passes through the Facility exactly once.
//   • A sub-strategy error is returned unchanged and no converter runs.
//   • The sub-strategy is shared by derived wrappers and clones, as in Filtered.
//   • cfg is carried to strategies derived from this one (Filter/Map/Or on a
//     *Mapped start from it).

package strategy

// Mapped applies a Facility to every value of its sub-strategy.
// Like Filtered, the sub-strategy is shared by derived wrappers and clones.
type Mapped[T any] struct {
	base     Strategy[T]
	facility Facility[T]
	cfg      config
}

// Generate produces from the sub-strategy, then converts. Errors from the
// sub-strategy are returned unchanged and no converter runs.
func (m *Mapped[T]) Generate() (T, error) {
	v, err := m.base.Generate()
	if err != nil {
		var zero T
		return zero, err
	}

	return m.facility.Convert(v), nil
}

// Clone copies the wrapper; the sub-strategy stays shared.
func (m *Mapped[T]) Clone() Strategy[T] {
	return CloneOf[T](m)
}

func (m *Mapped[T]) settings() config { return m.cfg }

// Facility returns the wrapper's converter chain.
func (m *Mapped[T]) Facility() Facility[T] { return m.facility }

// mapping returns a sibling sharing m's sub-strategy with an expanded Facility.
func (m *Mapped[T]) mapping(c Converter[T], opts ...Option) *Mapped[T] {
	return &Mapped[T]{
		base:     m.base,
		facility: m.facility.Expand(c),
		cfg:      m.cfg.with(opts...),
	}
}
