package session

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/graphtutor/traversal"
)

// Cursor is the snapshot under the step cursor.
type Cursor struct {
	Index    int                `json:"index"`
	Total    int                `json:"total"`
	Snapshot traversal.Snapshot `json:"snapshot"`
}

// Stats summarizes the recorded run.
type Stats struct {
	// TotalSteps is the number of snapshots.
	TotalSteps int `json:"totalSteps"`
	// VisitedNodes counts distinct nodes visited over the whole run.
	VisitedNodes int `json:"visitedNodes"`
	// Completion is (cursor+1)/TotalSteps as a percentage.
	Completion float64 `json:"completion"`
}

// Steps returns the full snapshot sequence.
func (s *Session) Steps() []traversal.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]traversal.Snapshot(nil), s.steps...)
}

// Current returns the snapshot under the cursor.
func (s *Session) Current() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursorLocked()
}

func (s *Session) cursorLocked() Cursor {
	return Cursor{Index: s.cursor, Total: len(s.steps), Snapshot: s.steps[s.cursor]}
}

// Next advances the cursor; at the last step it stays put.
func (s *Session) Next() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.steps)-1 {
		s.cursor++
	}

	return s.cursorLocked()
}

// Prev moves the cursor back; at the first step it stays put.
func (s *Session) Prev() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}

	return s.cursorLocked()
}

// Reset returns the cursor to the first step.
func (s *Session) Reset() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = 0

	return s.cursorLocked()
}

// Seek moves the cursor to index.
func (s *Session) Seek(index int) (Cursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.steps) {
		return Cursor{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, index, len(s.steps))
	}
	s.cursor = index

	return s.cursorLocked(), nil
}

// Stats summarizes the run and the cursor position.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statsLocked()
}

func (s *Session) statsLocked() Stats {
	seen := mapset.NewThreadUnsafeSet[int]()
	for _, step := range s.steps {
		seen.Append(step.Visited...)
	}
	total := len(s.steps)

	return Stats{
		TotalSteps:   total,
		VisitedNodes: seen.Cardinality(),
		Completion:   float64(s.cursor+1) / float64(total) * 100,
	}
}
