package strategy_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cauldron/strategy"
)

// counter returns a producer yielding 0,1,2,... and a pointer to its call count.
func counter() (func() (int, error), *int) {
	calls := 0
	return func() (int, error) {
		v := calls
		calls++
		return v, nil
	}, &calls
}

var (
	isEven     = strategy.NewRequirement("even", func(v int) bool { return v%2 == 0 })
	isOdd      = strategy.NewRequirement("odd", func(v int) bool { return v%2 != 0 })
	isPositive = strategy.NewRequirement("positive", func(v int) bool { return v > 0 })
)

func TestSieve_NoRequirementsAcceptsFirst(t *testing.T) {
	t.Parallel()
	produce, calls := counter()
	v, err := strategy.NewSieve[int](5).Sift(produce)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, *calls)
}

func TestSieve_ReturnsFirstSatisfying(t *testing.T) {
	t.Parallel()
	produce, calls := counter()
	// 0 fails positive, 1 fails even, 2 passes both.
	v, err := strategy.NewSieve(10, isPositive, isEven).Sift(produce)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, *calls)
}

func TestSieve_ShortCircuitsInOrder(t *testing.T) {
	t.Parallel()
	var checked []string
	track := func(name string, ok bool) strategy.Requirement[int] {
		return strategy.NewRequirement(name, func(int) bool {
			checked = append(checked, name)
			return ok
		})
	}
	s := strategy.NewSieve(1, track("a", true), track("b", false), track("c", true))
	_, err := s.Sift(func() (int, error) { return 0, nil })
	require.ErrorIs(t, err, strategy.ErrOutOfCycles)
	if diff := cmp.Diff([]string{"a", "b"}, checked); diff != "" {
		t.Errorf("evaluation order mismatch (-want +got):\n%s", diff)
	}
}

func TestSieve_ExhaustsExactlyTheBound(t *testing.T) {
	t.Parallel()
	produce, calls := counter()
	s := strategy.NewSieve(7, isEven, isOdd)
	_, err := s.Sift(produce)
	require.ErrorIs(t, err, strategy.ErrOutOfCycles)
	assert.Equal(t, 7, *calls)

	var ooc *strategy.OutOfCyclesError
	require.True(t, errors.As(err, &ooc))
	assert.Equal(t, 7, ooc.Attempts)
	assert.Equal(t, []string{"even", "odd"}, ooc.Requirements)
	// 0,2,4,6 pass "even" and fail "odd"; 1,3,5 fail "even".
	assert.Equal(t, []int{3, 4}, ooc.Rejections)
	assert.Equal(t, "odd", ooc.Strictest())
	assert.Contains(t, ooc.Error(), "after 7 attempts")
}

func TestSieve_ProducerErrorPropagatesImmediately(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	calls := 0
	_, err := strategy.NewSieve(50, isEven).Sift(func() (int, error) {
		calls++
		return 0, boom
	})
	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestSieve_ExpandDoesNotMutate(t *testing.T) {
	t.Parallel()
	base := strategy.NewSieve(10, isPositive)
	even := base.Expand(isEven)
	odd := base.Expand(isOdd)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, even.Len())
	assert.Equal(t, 2, odd.Len())
	assert.Equal(t, "even", even.Requirements()[1].Name())
	assert.Equal(t, "odd", odd.Requirements()[1].Name())
	assert.True(t, base.Accepts(3))
	assert.False(t, even.Accepts(3))
	assert.True(t, odd.Accepts(3))
	assert.Equal(t, 10, even.MaxAttempts())
}

func TestSieve_RequirementsIsACopy(t *testing.T) {
	t.Parallel()
	s := strategy.NewSieve(3, isEven)
	reqs := s.Requirements()
	reqs[0] = isOdd
	assert.True(t, s.Accepts(2))
}

func TestSieve_ConjunctionIsCommutative(t *testing.T) {
	t.Parallel()
	ab := strategy.NewSieve(1, isPositive, isEven)
	ba := strategy.NewSieve(1, isEven, isPositive)
	for v := -20; v <= 20; v++ {
		assert.Equal(t, ab.Accepts(v), ba.Accepts(v), "value %d", v)
	}
}

func TestSieve_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { strategy.NewSieve[int](0) })
	assert.Panics(t, func() { strategy.NewRequirement[int]("nil", nil) })
	assert.Panics(t, func() { strategy.NewConverter[int]("nil", nil) })
}
