// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng        = nil   (pure/deterministic unless seeded; NewRandom seeds from the clock)
//   • directed   = false
//   • density    = DefaultDensity (0.3)
//   • connected  = true
//   • maxNodes   = DefaultMaxNodes (50)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// directed selects the core graph mode in NewRandom.
	directed bool
	// density is the per-pair edge probability of NewRandom.
	density float64
	// connected asks NewRandom to join weak components.
	connected bool
	// maxNodes is the ceiling on n for NewRandom and Preset.
	maxNodes int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		directed:  false,
		density:   DefaultDensity,
		connected: true,
		maxNodes:  DefaultMaxNodes,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
