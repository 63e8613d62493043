// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Density is validated by the constructor that consumes it, so an
//     out-of-range value surfaces as ErrInvalidProbability, not a panic.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDirected makes NewRandom build a directed graph. Candidate pairs are
// still drawn once per i<j and recorded as i→j.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) {
		c.directed = directed
	}
}

// WithDensity sets the probability that NewRandom connects a candidate pair.
func WithDensity(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithMaxNodes sets the largest n NewRandom and Preset accept.
// Panics on n < 1.
func WithMaxNodes(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxNodes(n < 1)")
	}
	return func(c *builderConfig) {
		c.maxNodes = n
	}
}

// WithConnected toggles the connectivity guarantee of NewRandom.
func WithConnected(connected bool) BuilderOption {
	return func(c *builderConfig) {
		c.connected = connected
	}
}
