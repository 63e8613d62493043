// Package graphtutor is an interactive tutor for graph traversal: build a
// small graph, watch BFS or DFS run one step at a time, and ask for
// explanations or practice exercises along the way.
//
// The module is organized as a set of layered packages:
//
//	core/      - integer-id Graph with adjacency lists, stats and components
//	builder/   - random graphs and named presets (path, cycle, grid, ...)
//	traversal/ - BFS and DFS with a recorded Snapshot per step
//	analysis/  - BFS levels, shortest paths, cycles, topological order, matrix
//	exercise/  - generated questions and answer checking
//	explain/   - step explanations and chat via OpenAI, Gemini or fallbacks
//	tutorial/  - markdown lessons for algorithms and core concepts
//
// The binary in cmd/tutor serves a session over HTTP ("serve") or as an
// MCP tool server on stdio ("mcp"); see internal/app.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	BFS from 0 visits 0, 1, 2, 3; DFS from 0 visits 0, 2, 3, 1.
//
//	go run ./cmd/tutor serve -config tutor.hcl
package graphtutor
