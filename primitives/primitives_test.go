package primitives_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cauldron/primitives"
	"github.com/katalvlaran/cauldron/strategy"
)

const draws = 2000

func seeded(seed int64) strategy.Option { return strategy.WithSeed(seed) }

func TestBooleans_Validation(t *testing.T) {
	t.Parallel()
	for _, p := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		_, err := primitives.NewBooleans(p)
		assert.ErrorIs(t, err, primitives.ErrInvalidProbability, "p=%v", p)
	}
}

func TestBooleans_Degenerate(t *testing.T) {
	t.Parallel()
	always, err := primitives.NewBooleans(1, seeded(1))
	require.NoError(t, err)
	never, err := primitives.NewBooleans(0, seeded(1))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		v, _ := always.Generate()
		assert.True(t, v)
		v, _ = never.Generate()
		assert.False(t, v)
	}
}

func TestBooleans_AlwaysTrueFilteredByFalseRunsOutOfCycles(t *testing.T) {
	t.Parallel()
	always, err := primitives.NewBooleans(1)
	require.NoError(t, err)

	f := strategy.FilterFunc[bool](always, "is-false", func(b bool) bool { return !b }, strategy.WithMaxAttempts(25))
	_, err = f.Generate()
	require.ErrorIs(t, err, strategy.ErrOutOfCycles)

	var ooc *strategy.OutOfCyclesError
	require.True(t, errors.As(err, &ooc))
	assert.Equal(t, 25, ooc.Attempts)
}

func TestBooleans_Frequency(t *testing.T) {
	t.Parallel()
	b, err := primitives.NewBooleans(0.25, seeded(7))
	require.NoError(t, err)

	hits := 0
	for i := 0; i < 20000; i++ {
		if v, _ := b.Generate(); v {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/20000, 0.02)
}

func TestCharacters_EmptyDomain(t *testing.T) {
	t.Parallel()
	_, err := primitives.NewCharacters("")
	require.ErrorIs(t, err, primitives.ErrEmptyDomain)
}

func TestCharacters_StaysInDomain(t *testing.T) {
	t.Parallel()
	c, err := primitives.NewCharacters("äöü", seeded(3))
	require.NoError(t, err)
	assert.Equal(t, "äöü", c.Domain())

	seen := map[rune]bool{}
	for i := 0; i < draws; i++ {
		r, err := c.Generate()
		require.NoError(t, err)
		require.True(t, strings.ContainsRune("äöü", r), "rune %q", r)
		seen[r] = true
	}
	assert.Len(t, seen, 3)
}

func TestIntegers_InvalidRange(t *testing.T) {
	t.Parallel()
	_, err := primitives.NewIntegers(5, 4)
	require.ErrorIs(t, err, primitives.ErrInvalidRange)
}

func TestIntegers_InclusiveBounds(t *testing.T) {
	t.Parallel()
	g, err := primitives.NewIntegers(-3, 3, seeded(11))
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < draws; i++ {
		v, _ := g.Generate()
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 7)
}

func TestIntegers_NarrowAndWideKinds(t *testing.T) {
	t.Parallel()

	i8, err := primitives.NewIntegers[int8](math.MinInt8, math.MaxInt8, seeded(5))
	require.NoError(t, err)
	neg, pos := false, false
	for i := 0; i < draws; i++ {
		v, _ := i8.Generate()
		neg = neg || v < 0
		pos = pos || v > 0
	}
	assert.True(t, neg && pos)

	u64, err := primitives.NewIntegers[uint64](0, math.MaxUint64, seeded(5))
	require.NoError(t, err)
	high := false
	for i := 0; i < 100; i++ {
		v, _ := u64.Generate()
		high = high || v > math.MaxUint32
	}
	assert.True(t, high)

	single, err := primitives.NewIntegers[uint16](9, 9)
	require.NoError(t, err)
	v, _ := single.Generate()
	assert.Equal(t, uint16(9), v)
}

func TestStrings_LengthAndAlphabet(t *testing.T) {
	t.Parallel()
	src := strategy.NewSource(13)
	lengths, err := primitives.NewIntegers(2, 5, strategy.WithSource(src))
	require.NoError(t, err)
	alphabet, err := primitives.NewCharacters("xyz€", strategy.WithSource(src))
	require.NoError(t, err)

	s := primitives.NewStrings(lengths, alphabet)
	for i := 0; i < 500; i++ {
		v, err := s.Generate()
		require.NoError(t, err)
		n := utf8.RuneCountInString(v)
		require.True(t, n >= 2 && n <= 5, "length %d", n)
		require.Empty(t, strings.Trim(v, "xyz€"))
	}
}

func TestStrings_NegativeLength(t *testing.T) {
	t.Parallel()
	alphabet, _ := primitives.NewCharacters("a")
	s := primitives.NewStrings(strategy.Just(-1), alphabet)
	_, err := s.Generate()
	require.ErrorIs(t, err, primitives.ErrNegativeLength)
}

func TestStrings_PropagatesOutOfCycles(t *testing.T) {
	t.Parallel()
	alphabet, _ := primitives.NewCharacters("abc")
	upperOnly := strategy.FilterFunc[rune](alphabet, "upper", func(r rune) bool { return r >= 'A' && r <= 'Z' },
		strategy.WithMaxAttempts(3))
	s := primitives.NewStrings(strategy.Just(4), upperOnly)

	_, err := s.Generate()
	require.ErrorIs(t, err, strategy.ErrOutOfCycles)
	assert.Contains(t, err.Error(), "rune 1 of 4")
}

func TestVectors_SizesAndElements(t *testing.T) {
	t.Parallel()
	src := strategy.NewSource(17)
	sizes, _ := primitives.NewIntegers(0, 4, strategy.WithSource(src))
	elems, _ := primitives.NewIntegers(10, 20, strategy.WithSource(src))

	v := primitives.NewVectors[int](sizes, elems)
	empty := false
	for i := 0; i < 300; i++ {
		got, err := v.Generate()
		require.NoError(t, err)
		require.LessOrEqual(t, len(got), 4)
		empty = empty || len(got) == 0
		for _, e := range got {
			require.True(t, e >= 10 && e <= 20)
		}
	}
	assert.True(t, empty)
}

func TestVectors_FreshSlicePerCall(t *testing.T) {
	t.Parallel()
	v := primitives.NewVectors(strategy.Just(2), strategy.Just("a"))
	first, _ := v.Generate()
	first[0] = "mutated"
	second, _ := v.Generate()
	assert.Equal(t, []string{"a", "a"}, second)
}

func TestIdentifiers_RendersAndReportsRange(t *testing.T) {
	t.Parallel()
	idx, _ := primitives.NewIntegers(0, 25, seeded(19))
	ids := primitives.NewIdentifiers(idx, primitives.SymbolLabel)
	for i := 0; i < 200; i++ {
		v, err := ids.Generate()
		require.NoError(t, err)
		require.Len(t, v, 1)
	}

	bad := primitives.NewIdentifiers(strategy.Just(26), primitives.SymbolLabel)
	_, err := bad.Generate()
	require.ErrorIs(t, err, primitives.ErrIndexOutOfRange)

	decimal := primitives.NewIdentifiers(strategy.Just(42), nil)
	v, err := decimal.Generate()
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestUUIDs_SeededAreReproducibleV4(t *testing.T) {
	t.Parallel()
	a := primitives.NewUUIDs(seeded(23))
	b := primitives.NewUUIDs(seeded(23))

	for i := 0; i < 10; i++ {
		x, err := a.Generate()
		require.NoError(t, err)
		y, err := b.Generate()
		require.NoError(t, err)
		assert.Equal(t, x, y)
		assert.Equal(t, uuid.Version(4), x.Version())
		assert.Equal(t, uuid.RFC4122, x.Variant())
	}

	first, _ := a.Generate()
	second, _ := a.Generate()
	assert.NotEqual(t, first, second)
}

func TestLeaves_ComposeWithCombinators(t *testing.T) {
	t.Parallel()
	src := strategy.NewSource(29)
	small, _ := primitives.NewIntegers(0, 9, strategy.WithSource(src))
	large, _ := primitives.NewIntegers(100, 109, strategy.WithSource(src))

	u := strategy.OneOfWith([]strategy.Option{strategy.WithSource(src)},
		strategy.Strategy[int](small), strategy.Strategy[int](large))
	even := strategy.FilterFunc[int](u, "even", func(v int) bool { return v%2 == 0 })

	vals, err := strategy.Sample[int](even, 200)
	require.NoError(t, err)
	for _, v := range vals {
		require.Zero(t, v%2)
		require.True(t, v <= 9 || (v >= 100 && v <= 109))
	}

	// Clones are independent values with identical behavior.
	clone := even.Clone()
	require.NotSame(t, even, clone)
	v, err := clone.Generate()
	require.NoError(t, err)
	assert.Zero(t, v%2)
}
