// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - NewRandom and Preset are compositions over BuildGraph; constructors live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/graphtutor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append their own nodes via g.AddNodes and address them relative to the
//     returned first id, so constructors compose into disjoint unions.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// NewRandom builds the tutor's random graph: n nodes, every unordered pair
// i<j joined with probability density, and, unless WithConnected(false) is
// given, the weak components stitched into one.
//
// Implementation:
//   - Stage 1: Resolve options; seed the RNG from the clock when none is given.
//   - Stage 2: Validate 1 ≤ n ≤ maxNodes and density ∈ [0,1].
//   - Stage 3: BuildGraph(Nodes(n), RandomEdges(density), ConnectComponents()).
//
// Behavior highlights:
//   - Always terminates; always connected for n ≥ 1 when connectivity is requested.
//   - WithSeed(s) makes the result reproducible.
//
// Complexity:
//   - Time O(n²), Space O(n + E).
func NewRandom(n int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		opts = append(opts[:len(opts):len(opts)], WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	}

	if err := validateMin(methodNewRandom, n, MinRandomNodes); err != nil {
		return nil, err
	}
	if err := validateMax(methodNewRandom, n, cfg.maxNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(methodNewRandom, cfg.density); err != nil {
		return nil, err
	}

	cons := []Constructor{Nodes(n), RandomEdges(cfg.density)}
	if cfg.connected {
		cons = append(cons, ConnectComponents())
	}

	return BuildGraph([]core.GraphOption{core.WithDirected(cfg.directed)}, opts, cons...)
}

// presetFn maps a learner-facing size to a deterministic Constructor.
type presetFn func(n int) Constructor

// presets is the registry behind Preset and PresetNames.
var presets = map[string]presetFn{
	"path":        Path,
	"cycle":       Cycle,
	"star":        Star,
	"complete":    Complete,
	"binary-tree": BinaryTree,
	"grid":        squareGrid,
}

// squareGrid picks the most square rows×cols grid with rows*cols ≤ n.
func squareGrid(n int) Constructor {
	rows := int(math.Sqrt(float64(n)))
	if rows < MinGridDim {
		return Grid(rows, rows)
	}

	return Grid(rows, n/rows)
}

// Preset resolves a named, deterministic shape of roughly n nodes.
// Names are case-insensitive; see PresetNames.
//
// Errors:
//   - ErrUnknownPreset for unregistered names.
//   - ErrTooManyVertices when n exceeds the WithMaxNodes ceiling.
//   - Size errors of the resolved constructor (ErrTooFewVertices).
func Preset(name string, n int, opts ...BuilderOption) (*core.Graph, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", methodPreset, name, ErrUnknownPreset)
	}
	cfg := newBuilderConfig(opts...)
	if err := validateMax(methodPreset, n, cfg.maxNodes); err != nil {
		return nil, err
	}

	return BuildGraph([]core.GraphOption{core.WithDirected(cfg.directed)}, opts, fn(n))
}

// PresetNames lists the names Preset accepts, sorted.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
