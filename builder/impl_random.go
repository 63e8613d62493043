// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_random.go - the random-graph pipeline: Nodes(n), RandomEdges(p), ConnectComponents().
//
// Canonical model:
//   - Nodes appends n isolated nodes.
//   - RandomEdges iterates unordered pairs {i,j} with i<j over every node in g
//     and records i→j when rng.Float64() < p. Directed graphs use the same
//     pairs, so edges always point from the lower to the higher id.
//   - ConnectComponents joins consecutive weak components with one edge
//     between a uniformly chosen member of each.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - ConnectComponents falls back to the smallest member of each component
//     when cfg.rng is nil.
//
// Complexity:
//   - RandomEdges: O(V²) Bernoulli trials.
//   - ConnectComponents: O(V + E) for the component scan + O(C) edges.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Components are visited in ascending order of their smallest member.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// Nodes returns a Constructor that appends n isolated nodes (n ≥ 0).
func Nodes(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodNodes, n, 0); err != nil {
			return err
		}
		_, err := addBlock(g, methodNodes, n)

		return err
	}
}

// RandomEdges returns a Constructor that samples each unordered pair of the
// nodes already in g independently with probability p.
func RandomEdges(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateProbability(methodRandomEdges, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		n := g.NodeCount()
		rng := cfg.rng

		// 2) Stable trial order: i asc, j asc.
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				var hit bool
				switch {
				case rng == nil:
					hit = p == MaxProbability // deterministic edge set for p ∈ {0,1}
				default:
					hit = rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := addEdge(g, methodRandomEdges, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// ConnectComponents returns a Constructor that stitches the weak components
// of g into one by linking each component to the next.
//
// Implementation:
//   - Stage 1: comps = g.Components() (ascending by smallest member).
//   - Stage 2: For k in [0, len(comps)-1): pick u ∈ comps[k], v ∈ comps[k+1]
//     uniformly (or the smallest member without an RNG) and add u→v.
//
// Behavior highlights:
//   - Every added edge merges two components, so one pass suffices and the
//     loop always terminates with a single component (for V ≥ 1).
func ConnectComponents() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		comps := g.Components()
		for k := 0; k+1 < len(comps); k++ {
			u := pick(cfg, comps[k])
			v := pick(cfg, comps[k+1])
			if err := addEdge(g, methodConnectComponents, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// pick returns a uniformly chosen member of ids, or ids[0] without an RNG.
// ids is never empty (components hold at least their seed).
func pick(cfg builderConfig, ids []int) int {
	if cfg.rng == nil {
		return ids[0]
	}

	return ids[cfg.rng.Intn(len(ids))]
}
