package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg := newConfig()
	assert.Equal(t, DefaultMaxAttempts, cfg.maxAttempts)
	assert.IsType(t, processSource{}, cfg.source)
	require.NotNil(t, cfg.logger)
	assert.Nil(t, cfg.metrics)
}

func TestConfig_LastOptionWins(t *testing.T) {
	t.Parallel()
	cfg := newConfig(WithMaxAttempts(5), WithMaxAttempts(9))
	assert.Equal(t, 9, cfg.maxAttempts)

	base := newConfig(WithMaxAttempts(5))
	derived := base.with(WithMaxAttempts(2))
	assert.Equal(t, 5, base.maxAttempts, "with returns a copy")
	assert.Equal(t, 2, derived.maxAttempts)
}

func TestConfig_SeedIsReproducible(t *testing.T) {
	t.Parallel()
	a, b := newConfig(WithSeed(42)).source, newConfig(WithSeed(42)).source
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestConfig_WithRandAdoptsGenerator(t *testing.T) {
	t.Parallel()
	want := rand.New(rand.NewSource(7)).Intn(1000)
	got := newConfig(WithRand(rand.New(rand.NewSource(7)))).source.Intn(1000)
	assert.Equal(t, want, got)
}

func TestResolve_ExposesSettings(t *testing.T) {
	t.Parallel()
	logger := zap.NewExample()
	src := NewSource(1)
	s := Resolve(WithMaxAttempts(3), WithSource(src), WithLogger(logger))
	assert.Equal(t, 3, s.MaxAttempts())
	assert.Same(t, src, s.Source())
	assert.Same(t, logger, s.Logger())
}

func TestUint64n(t *testing.T) {
	t.Parallel()
	src := NewSource(3)
	for _, n := range []uint64{1, 2, 3, 7, 8, 1000, 1<<63 + 1} {
		for i := 0; i < 200; i++ {
			require.Less(t, Uint64n(src, n), n, "n=%d", n)
		}
	}
	// n == 0 means the full range; just make sure it does not panic or hang.
	_ = Uint64n(src, 0)
}

func TestUint64n_CoversSmallRange(t *testing.T) {
	t.Parallel()
	src := NewSource(4)
	seen := map[uint64]bool{}
	for i := 0; i < 500; i++ {
		seen[Uint64n(src, 5)] = true
	}
	assert.Len(t, seen, 5)
}
