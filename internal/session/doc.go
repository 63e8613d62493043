// Package session holds the state of one learner: the graph, the chosen
// algorithm and start node, the recorded snapshot sequence with a cursor,
// the chat history and the exercise mode.
//
// Steps are recorded eagerly and recomputed whenever the graph, the
// algorithm or the start node changes; the cursor then returns to 0.
// A Session is safe for concurrent use. Provider calls (Explain, Ask) run
// outside the lock.
package session
