// Package httpapi exposes one learner session as a JSON HTTP API.
//
// Routes:
//
//	GET    /healthz
//	GET    /presets
//	GET    /tutorial/algorithms/:alg
//	GET    /tutorial/concepts
//	GET    /tutorial/concepts/:name
//	GET    /session
//	POST   /session/graph
//	PUT    /session/algorithm
//	PUT    /session/start
//	GET    /session/analysis
//	GET    /session/steps
//	GET    /session/step
//	PUT    /session/step
//	POST   /session/step/next
//	POST   /session/step/prev
//	POST   /session/step/reset
//	GET    /session/explanation
//	GET    /session/chat
//	POST   /session/chat
//	DELETE /session/chat
//	GET    /session/exercise
//	POST   /session/exercise
//	DELETE /session/exercise
//	POST   /session/exercise/answer
//
// Errors are {"error": "..."}: 400 for malformed bodies, 404 for unknown
// tutorial entries or a missing exercise, 422 for values outside their
// domain (invalid node, unknown algorithm, bad graph parameters).
package httpapi
