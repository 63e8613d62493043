// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults locks in the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no RNG unless seeded")
	assert.False(t, cfg.directed)
	assert.Equal(t, DefaultDensity, cfg.density)
	assert.True(t, cfg.connected)
	assert.Equal(t, DefaultMaxNodes, cfg.maxNodes)
}

// TestConfigLastWins verifies options apply in order.
func TestConfigLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithDensity(0.1), WithDensity(0.9), WithConnected(false), WithDirected(true))
	assert.Equal(t, 0.9, cfg.density)
	assert.False(t, cfg.connected)
	assert.True(t, cfg.directed)
}

// TestRNGOptions verifies reproducibility with WithSeed and the nil panic of WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed must give same stream")

	r := rand.New(rand.NewSource(7))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	assert.PanicsWithValue(t, "builder: WithRand(nil)", func() { WithRand(nil) })
}

// TestWithMaxNodes verifies the ceiling option and its panic on n < 1.
func TestWithMaxNodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, newBuilderConfig(WithMaxNodes(12)).maxNodes)
	assert.PanicsWithValue(t, "builder: WithMaxNodes(n < 1)", func() { WithMaxNodes(0) })
}
