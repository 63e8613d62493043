// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first node of the block is the hub (CenterNode); leaves follow.
//   • Emits hub→leaf edges in ascending leaf order.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/graphtutor/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodStar, n)
		if err != nil {
			return err
		}

		hub := first + CenterNode
		for leaf := hub + 1; leaf < first+n; leaf++ {
			if err = addEdge(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
