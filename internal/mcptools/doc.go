// Package mcptools exposes one learner session as Model Context Protocol
// tools, so an assistant can drive the tutor over stdio.
//
// Tools: new_graph, traverse, analyze_graph, step, explain_step, ask, new_exercise,
// check_answer, describe_algorithm. Results are JSON text; domain errors
// come back as tool errors (IsError) rather than protocol errors.
package mcptools
