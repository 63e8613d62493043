// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n nodes; emits edges (i-1)→i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/graphtutor/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodPath, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, first+i-1, first+i); err != nil {
				return err
			}
		}

		return nil
	}
}
