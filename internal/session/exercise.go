package session

import (
	"github.com/katalvlaran/graphtutor/exercise"
)

// Result is the outcome of one answer check.
type Result struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Score    Score  `json:"score"`
}

// Score counts checked answers while exercise mode is on.
type Score struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// NewExercise enables exercise mode and generates an exercise for the
// current algorithm. An empty kind picks one at random.
func (s *Session) NewExercise(kind exercise.Kind) (*exercise.Exercise, error) {
	alg := s.Algorithm()

	var (
		ex  *exercise.Exercise
		err error
	)
	if kind == "" {
		ex, err = s.gen.Generate(alg)
	} else {
		ex, err = s.gen.GenerateKind(kind, alg)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exMode {
		s.attempts, s.solved = 0, 0
	}
	s.exMode, s.current = true, ex

	return ex, nil
}

// StopExercise leaves exercise mode and drops the current exercise.
func (s *Session) StopExercise() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exMode, s.current = false, nil
}

// Exercise returns the current exercise, if exercise mode is on.
func (s *Session) Exercise() (*exercise.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.exMode && s.current != nil
}

// CheckAnswer verifies raw against the current exercise. Malformed answers
// and a missing exercise produce feedback, never an error.
func (s *Session) CheckAnswer(raw string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, feedback := exercise.Verify(s.current, raw)
	if s.current != nil {
		s.attempts++
		if ok {
			s.solved++
		}
	}

	return Result{Correct: ok, Feedback: feedback, Score: Score{Attempts: s.attempts, Correct: s.solved}}
}
