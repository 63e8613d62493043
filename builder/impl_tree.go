// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_tree.go - implementation of BinaryTree(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Heap layout: node i has children 2i+1 and 2i+2 when they exist.
//   • Emits parent→child edges in ascending child order.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/graphtutor/core"
)

// BinaryTree returns a Constructor that builds a complete binary tree on n
// nodes in heap order. BinaryTree(7) is the graph of traversal-order exercises.
func BinaryTree(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodBinaryTree, n, MinTreeNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodBinaryTree, n)
		if err != nil {
			return err
		}

		for child := 1; child < n; child++ {
			parent := (child - 1) / 2
			if err = addEdge(g, methodBinaryTree, first+parent, first+child); err != nil {
				return err
			}
		}

		return nil
	}
}
