// Package builder constructs the graphs a learner explores: random graphs
// with guaranteed connectivity and a handful of named, deterministic presets.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph, resolve the
//     builderConfig once and run constructors in order.
//     – NewRandom(n, opts...): the tutor's canonical random graph.
//     – Preset(name, n): resolve a named shape for outer surfaces.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: RNG, directedness, edge density, connectivity policy.
//   - Constructors (each appends its own block of nodes, so several can be
//     composed into one disjoint union):
//     – Nodes, RandomEdges, ConnectComponents (the random pipeline).
//     – Path, Cycle, Star, Complete, Grid, BinaryTree (presets).
//   - Validation helpers:
//     – validateMin, validateProbability.
//
// Guarantees:
//
//   - NewRandom(n) with connectivity requested (the default) always yields a
//     weakly connected graph for n ≥ 1, for every seed.
//   - Same options + seed + constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves only return sentinel errors.
//
// Errors:
//
//	ErrTooFewVertices      - a size parameter is below its minimum.
//	ErrTooManyVertices     - n above the WithMaxNodes ceiling (DefaultMaxNodes).
//	ErrInvalidProbability  - density outside [0,1].
//	ErrNeedRandSource      - a stochastic constructor ran without an RNG.
//	ErrConstructFailed     - nil constructor or nil graph.
//	ErrUnknownPreset       - Preset called with an unregistered name.
package builder
