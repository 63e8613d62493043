// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph        = "BuildGraph"
	methodNewRandom         = "NewRandom"
	methodNodes             = "Nodes"
	methodRandomEdges       = "RandomEdges"
	methodConnectComponents = "ConnectComponents"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodComplete          = "Complete"
	methodGrid              = "Grid"
	methodBinaryTree        = "BinaryTree"
	methodPreset            = "Preset"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRandomNodes is the smallest graph NewRandom will build.
const MinRandomNodes = 1

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star: one center plus a leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest complete graph (K_1, a single node).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinTreeNodes is the smallest binary tree (a lone root).
const MinTreeNodes = 1

//-----------------------------------------------------------------------------
// Defaults and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultMaxNodes caps the node count of NewRandom and Preset unless
// WithMaxNodes raises or lowers it. Every node costs a few recorded steps,
// each holding a copy of the visited list.
const DefaultMaxNodes = 50

// DefaultDensity is the probability of each candidate edge in NewRandom.
const DefaultDensity = 0.3

// MinProbability is the lower bound for a density, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for a density, inclusive.
const MaxProbability = 1.0

// CenterNode is the hub of a Star, relative to the star's first node.
const CenterNode = 0
