// Package builder assembles composite values from per-field strategies.
//
// A Builder[T] is itself a strategy.Strategy[T]: each Generate starts from a
// fresh T (the zero value, or the result of a Construct hook) and applies every
// field in declaration order, drawing one value from the field's strategy and
// handing it to the field's setter.
//
//	type Point struct{ X, Y int }
//
//	xs, _ := primitives.NewIntegers(0, 9)
//	ys, _ := primitives.NewIntegers(-9, 0)
//	points := builder.New(
//		builder.Set[Point](xs, func(p *Point, v int) { p.X = v }),
//		builder.Set[Point](ys, func(p *Point, v int) { p.Y = v }),
//	)
//	onDiagonal := strategy.FilterFunc[Point](points, "x=-y", func(p Point) bool { return p.X == -p.Y })
//
// Guarantees:
//
//   - Declaration order: fields are drawn and set in the order given to New.
//   - First failure wins: the first field error stops assembly and is returned
//     wrapped with the field index; errors.Is still matches strategy.ErrOutOfCycles.
//   - Independence: Clone deep-clones every field strategy.
//   - Fast-fail: nil setters, nil strategies and nil fields panic at construction.
package builder
