package exercise

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/traversal"
)

// Sentinel errors for exercise generation and answer parsing.
var (
	// ErrUnknownKind is returned when an exercise kind is not one of Kinds().
	ErrUnknownKind = errors.New("exercise: unknown kind")

	// ErrMalformedAnswer is returned by the parsers when learner input does not
	// have the expected shape. Verify turns it into feedback.
	ErrMalformedAnswer = errors.New("exercise: malformed answer")
)

// Kind tags the four exercise variants.
type Kind string

const (
	TraversalOrder       Kind = "traversal_order"
	VisitedNodesAtStep   Kind = "visited_nodes"
	NextNodeToVisit      Kind = "next_node"
	ApplicationKnowledge Kind = "application"
)

// Kinds lists every exercise kind in a stable order.
func Kinds() []Kind {
	return []Kind{TraversalOrder, VisitedNodesAtStep, NextNodeToVisit, ApplicationKnowledge}
}

// ParseKind maps a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// InputHint describes the answer shape the verifier expects.
func (k Kind) InputHint() string {
	switch k {
	case TraversalOrder, VisitedNodesAtStep:
		return "comma-separated list of node numbers"
	case NextNodeToVisit:
		return "single node number"
	default:
		return "free text"
	}
}

// Answer is the ground truth of an exercise. Format renders it in exactly
// the shape Verify accepts.
type Answer interface {
	Format() string
}

// OrderAnswer is an ordered sequence of node ids.
type OrderAnswer []int

// Format renders "0, 2, 6".
func (a OrderAnswer) Format() string { return joinInts(a) }

// SetAnswer is a set of node ids, kept in visit order for display.
type SetAnswer []int

// Format renders "0, 2, 4".
func (a SetAnswer) Format() string { return joinInts(a) }

// NodeAnswer is a single node id.
type NodeAnswer int

// Format renders "3".
func (a NodeAnswer) Format() string { return strconv.Itoa(int(a)) }

// KeywordAnswer is the list of canonical application names.
type KeywordAnswer []string

// Format joins the keywords with ", ".
func (a KeywordAnswer) Format() string { return strings.Join(a, ", ") }

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}

// Exercise is one generated question. It is never mutated after creation.
//
// Graph is nil for ApplicationKnowledge. Step is set for VisitedNodesAtStep;
// Visited and Frontier describe the synthetic state of NextNodeToVisit.
// Answer never appears in JSON.
type Exercise struct {
	ID        string              `json:"id"`
	Kind      Kind                `json:"kind"`
	Algorithm traversal.Algorithm `json:"algorithm"`
	Graph     *core.Graph         `json:"-"`
	Edges     []core.Edge         `json:"edges,omitempty"`
	Start     int                 `json:"start"`
	Step      int                 `json:"step,omitempty"`
	Visited   []int               `json:"visited,omitempty"`
	Frontier  *traversal.Frontier `json:"frontier,omitempty"`
	Prompt    string              `json:"prompt"`
	InputHint string              `json:"inputHint"`
	Answer    Answer              `json:"-"`
}
