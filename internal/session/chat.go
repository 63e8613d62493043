package session

import (
	"context"
	"strings"

	"github.com/katalvlaran/graphtutor/explain"
)

// Explain returns an explanation of the snapshot under the cursor. It
// never fails; without a provider the local explanation is returned.
func (s *Session) Explain(ctx context.Context) string {
	s.mu.Lock()
	alg, cur := s.alg, s.cursorLocked()
	s.mu.Unlock()

	return s.tutor.ExplainStep(ctx, alg, cur.Snapshot, cur.Index, cur.Total)
}

// Ask answers a learner question about the current state and records both
// turns in the chat history.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	s.mu.Lock()
	alg, cur := s.alg, s.cursorLocked()
	history := append([]explain.Message(nil), s.history...)
	s.mu.Unlock()

	reply := s.tutor.Chat(ctx, history, question, alg, &cur.Snapshot)

	s.mu.Lock()
	s.history = append(s.history,
		explain.Message{Role: explain.RoleUser, Content: question},
		explain.Message{Role: explain.RoleAssistant, Content: reply},
	)
	s.mu.Unlock()

	return reply, nil
}

// History returns the chat history, oldest first.
func (s *Session) History() []explain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]explain.Message(nil), s.history...)
}

// ClearHistory forgets the conversation.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
