package tutorial

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/graphtutor/traversal"
)

// ErrUnknownConcept is returned by Concept for names it does not know.
var ErrUnknownConcept = errors.New("tutorial: unknown concept")

// Concept names.
const (
	ConceptGraph = "graph"
	ConceptStack = "stack"
	ConceptQueue = "queue"
)

// Algorithm returns the markdown description of alg.
func Algorithm(alg traversal.Algorithm) (string, error) {
	text, ok := algorithms[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", traversal.ErrUnknownAlgorithm, string(alg))
	}

	return text, nil
}

// Concept returns the markdown explanation of name (case-insensitive).
func Concept(name string) (string, error) {
	text, ok := concepts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownConcept, name)
	}

	return text, nil
}

// Concepts lists the known concept names, sorted.
func Concepts() []string {
	out := make([]string, 0, len(concepts))
	for name := range concepts {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
