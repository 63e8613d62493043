// Package tutorial holds the static learning material shown next to a
// traversal: one markdown description per algorithm and short markdown
// explanations of the supporting concepts (graph, stack, queue).
//
// All content is constant and safe for concurrent use.
package tutorial
