package traversal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// FrontierKind tags the container a Frontier models.
type FrontierKind string

const (
	// StackKind is a LIFO frontier: the last item is next.
	StackKind FrontierKind = "stack"
	// QueueKind is a FIFO frontier: the first item is next.
	QueueKind FrontierKind = "queue"
)

// Label returns the capitalized container name ("Stack" or "Queue").
func (k FrontierKind) Label() string {
	if k == QueueKind {
		return "Queue"
	}

	return "Stack"
}

// Frontier is the set of discovered-but-not-yet-visited nodes, tagged with
// its discipline. Items are kept in container order: for a stack the top is
// the last element, for a queue the head is the first.
//
// The zero value is an empty stack.
type Frontier struct {
	kind  FrontierKind
	items []int
}

// Stack returns a stack frontier holding items (bottom first).
func Stack(items ...int) Frontier {
	return Frontier{kind: StackKind, items: append([]int(nil), items...)}
}

// Queue returns a queue frontier holding items (head first).
func Queue(items ...int) Frontier {
	return Frontier{kind: QueueKind, items: append([]int(nil), items...)}
}

// NewFrontier returns an empty frontier of the given kind.
func NewFrontier(kind FrontierKind, items ...int) Frontier {
	if kind == QueueKind {
		return Queue(items...)
	}

	return Stack(items...)
}

// Kind reports the discipline; the zero value reports StackKind.
func (f Frontier) Kind() FrontierKind {
	if f.kind == "" {
		return StackKind
	}

	return f.kind
}

// Items returns a copy of the items in container order.
func (f Frontier) Items() []int {
	out := make([]int, len(f.items))
	copy(out, f.items)

	return out
}

// Len returns the number of items, duplicates included.
func (f Frontier) Len() int { return len(f.items) }

// Contains reports whether id is waiting in the frontier.
func (f Frontier) Contains(id int) bool {
	for _, v := range f.items {
		if v == id {
			return true
		}
	}

	return false
}

// Next returns the node the discipline would visit next, given the nodes
// already visited: a stack is scanned from the top (end), a queue from the
// head (front), and visited items are discarded the way the recorder
// discards them. ok is false when nothing unvisited remains.
//
// Complexity: O(len(items) + len(visited)).
func (f Frontier) Next(visited []int) (next int, ok bool) {
	seen := mapset.NewThreadUnsafeSet[int](visited...)

	if f.Kind() == QueueKind {
		for _, v := range f.items {
			if !seen.Contains(v) {
				return v, true
			}
		}

		return 0, false
	}

	for i := len(f.items) - 1; i >= 0; i-- {
		if !seen.Contains(f.items[i]) {
			return f.items[i], true
		}
	}

	return 0, false
}

// String renders "Stack: [1, 2]" for prompts and logs.
func (f Frontier) String() string {
	return fmt.Sprintf("%s: %s", f.Kind().Label(), FormatNodes(f.items))
}

// MarshalJSON encodes the frontier as {"kind": "...", "items": [...]}.
func (f Frontier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  FrontierKind `json:"kind"`
		Items []int        `json:"items"`
	}{Kind: f.Kind(), Items: f.Items()})
}

// UnmarshalJSON is the inverse of MarshalJSON; an unknown kind is an error.
func (f *Frontier) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  FrontierKind `json:"kind"`
		Items []int        `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case StackKind, QueueKind:
	case "":
		raw.Kind = StackKind
	default:
		return fmt.Errorf("traversal: unknown frontier kind %q", raw.Kind)
	}
	*f = NewFrontier(raw.Kind, raw.Items...)

	return nil
}

// push appends ids to the end (stack top or queue tail).
func (f *Frontier) push(ids ...int) {
	f.items = append(f.items, ids...)
}

// take removes the next item per discipline. Callers check Len() > 0.
func (f *Frontier) take() int {
	if f.Kind() == QueueKind {
		v := f.items[0]
		f.items = f.items[1:]
		return v
	}
	last := len(f.items) - 1
	v := f.items[last]
	f.items = f.items[:last]

	return v
}

// FormatNodes renders ids the way learners type them back: "[0, 2, 6]".
func FormatNodes(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports whether both frontiers have the same kind and items.
// go-cmp picks this method up, so snapshots compare without options.
func (f Frontier) Equal(o Frontier) bool {
	if f.Kind() != o.Kind() || len(f.items) != len(o.items) {
		return false
	}
	for i := range f.items {
		if f.items[i] != o.items[i] {
			return false
		}
	}

	return true
}
