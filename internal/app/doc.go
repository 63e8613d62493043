// Package app wires the configuration into a running tutor: logger,
// explanation provider, session and one of the two surfaces (HTTP or MCP).
package app
