// Package exercise generates self-test exercises about DFS and BFS and
// verifies free-form learner answers against their ground truth.
//
// Kinds
//
//   - TraversalOrder        full exploration order on a fixed 7-node tree.
//   - VisitedNodesAtStep    visited set after k ∈ [2,4] visit events on a fixed 6-node graph.
//   - NextNodeToVisit       the node visited next from a synthetic visited set + frontier.
//   - ApplicationKnowledge  free text naming at least two canonical applications.
//
// Ground truth
//
//	Every graph-based answer is computed by the traversal package on the
//	exercise's own graph (traversal.Run, traversal.VisitedAfter,
//	traversal.Frontier.Next), so exercises cannot drift from the recorder
//	the learner steps through.
//
// Verification
//
//	Verify(ex, raw) never fails: malformed input (ErrMalformedAnswer
//	internally) becomes formatting-help feedback. For every exercise,
//	Verify(ex, ex.Answer.Format()) reports correct.
//
// Determinism
//
//	NewGenerator(WithSeed(s)) fixes the kind sequence and the step counts;
//	WithKind or WithKindSelector override kind selection for tests.
package exercise
