package exercise

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/graphtutor/traversal"
)

// Feedback texts shared by the verifier.
const (
	listFormatHelp   = "Please enter your answer as a comma-separated list of node numbers (e.g., 0, 1, 2, 3)."
	singleFormatHelp = "Please enter your answer as a single node number (e.g., 3)."
	noExercise       = "There is no active exercise to check."
	minApplications  = 2
	hintApplications = 3
)

// ParseNodeList parses "0, 2, 6" into node ids. Empty input, empty items and
// non-integers fail with ErrMalformedAnswer.
func ParseNodeList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedAnswer)
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a node number", ErrMalformedAnswer, strings.TrimSpace(p))
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseNode parses a single node id.
func ParseNode(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a node number", ErrMalformedAnswer, strings.TrimSpace(raw))
	}

	return v, nil
}

// Verify checks a learner's raw answer against ex and returns whether it is
// correct plus feedback text. It never fails: malformed input yields
// formatting help.
//
// Rules:
//   - TraversalOrder: order-sensitive equality of the parsed list.
//   - VisitedNodesAtStep: set equality of the parsed list; repeated ids are
//     rejected with their own feedback.
//   - NextNodeToVisit: equality of the parsed node; wrong answers name the right one.
//   - ApplicationKnowledge: substring count over the canonical keywords after
//     normalizePhrase on both sides; at least two are needed.
func Verify(ex *Exercise, raw string) (bool, string) {
	if ex == nil || ex.Answer == nil {
		return false, noExercise
	}

	switch want := ex.Answer.(type) {
	case OrderAnswer:
		got, err := ParseNodeList(raw)
		if errors.Is(err, ErrMalformedAnswer) {
			return false, listFormatHelp
		}
		if equalOrder(got, want) {
			return true, "Your traversal order is correct!"
		}
		return false, fmt.Sprintf("Not quite right. The correct order should be: %s", traversal.FormatNodes(want))

	case SetAnswer:
		got, err := ParseNodeList(raw)
		if errors.Is(err, ErrMalformedAnswer) {
			return false, listFormatHelp
		}
		if dup, ok := firstRepeat(got); ok {
			return false, fmt.Sprintf("Node %d is listed more than once. List each visited node once.", dup)
		}
		if mapset.NewThreadUnsafeSet(got...).Equal(mapset.NewThreadUnsafeSet(want...)) {
			return true, "Your set of visited nodes is correct!"
		}
		return false, fmt.Sprintf("Not quite right. After %d nodes have been visited, the visited set is: %s",
			ex.Step, traversal.FormatNodes(want))

	case NodeAnswer:
		got, err := ParseNode(raw)
		if errors.Is(err, ErrMalformedAnswer) {
			return false, singleFormatHelp
		}
		if got == int(want) {
			return true, fmt.Sprintf("Correct! Node %d will be visited next.", int(want))
		}
		return false, fmt.Sprintf("Not quite right. The next node to be visited would be %d.", int(want))

	case KeywordAnswer:
		switch n := countMentions(raw, want); {
		case n >= minApplications:
			return true, "Your understanding of algorithm applications is correct!"
		case n == 1:
			return false, "You've identified one valid application. Can you think of another one?"
		default:
			hint := want
			if len(hint) > hintApplications {
				hint = hint[:hintApplications]
			}
			return false, fmt.Sprintf("Try again. Some valid applications include: %s.", strings.Join(hint, ", "))
		}
	}

	return false, noExercise
}

func equalOrder(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

// firstRepeat returns the first id that occurs twice in ids.
func firstRepeat(ids []int) (int, bool) {
	seen := mapset.NewThreadUnsafeSetWithSize[int](len(ids))
	for _, v := range ids {
		if !seen.Add(v) {
			return v, true
		}
	}

	return 0, false
}

// phraseSeparators are folded to spaces so "level-order" matches "level order".
var phraseSeparators = strings.NewReplacer("-", " ", "_", " ", "/", " ")

// normalizePhrase lower-cases s, folds separators to spaces and collapses
// runs of whitespace.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(phraseSeparators.Replace(strings.ToLower(s))), " ")
}

// countMentions counts keywords that occur in raw after normalization.
func countMentions(raw string, keywords []string) int {
	text := normalizePhrase(raw)
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, normalizePhrase(kw)) {
			n++
		}
	}

	return n
}
