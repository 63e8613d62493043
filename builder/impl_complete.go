// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every pair i<j once, i asc then j asc.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.

package builder

import (
	"github.com/katalvlaran/graphtutor/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodComplete, n)
		if err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
