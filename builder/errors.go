// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices).
//   • Constructors never panic; validation panics are confined to WithX option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that a requested node count exceeds the
// configured ceiling (WithMaxNodes, DefaultMaxNodes).
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrInvalidProbability indicates that a density value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at composition time
// (nil constructor, nil graph) or a core mutation that failed mid-build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates Preset was asked for a name it does not know.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
