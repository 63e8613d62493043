package explain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/explain"
	"github.com/katalvlaran/graphtutor/traversal"
)

func ptr(v int) *int { return &v }

// expandSnap is the DFS state after expanding node 0 of the 7-node tree.
var expandSnap = traversal.Snapshot{
	Kind:             traversal.StepExpand,
	Visited:          []int{0},
	Frontier:         traversal.Stack(1, 2),
	Current:          ptr(0),
	ExplorationOrder: []int{0},
	Added:            []int{2, 1},
	Description:      "Adding unvisited neighbors of node 0 to the stack: [2, 1]",
}

// stubGateway records the calls it receives.
type stubGateway struct {
	reply string
	err   error
	delay time.Duration
	got   []explain.Message
}

func (s *stubGateway) ExplainStep(ctx context.Context, _ traversal.Algorithm, _ traversal.Snapshot, _, _ int) (string, error) {
	return s.wait(ctx)
}

func (s *stubGateway) Chat(ctx context.Context, msgs []explain.Message, _ traversal.Algorithm) (string, error) {
	s.got = msgs
	return s.wait(ctx)
}

func (s *stubGateway) wait(ctx context.Context) (string, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}

	return s.reply, s.err
}

func TestNew_Selection(t *testing.T) {
	gw, err := explain.New("", explain.Config{})
	require.NoError(t, err)
	assert.IsType(t, explain.Unconfigured{}, gw)

	gw, err = explain.New("OpenAI", explain.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &explain.OpenAI{}, gw)

	gw, err = explain.New("gemini", explain.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &explain.Gemini{}, gw)

	_, err = explain.New("openai", explain.Config{})
	assert.ErrorIs(t, err, explain.ErrGatewayUnavailable)

	_, err = explain.New("llama", explain.Config{APIKey: "k"})
	assert.ErrorIs(t, err, explain.ErrUnknownProvider)
}

func TestUnconfigured(t *testing.T) {
	_, err := explain.Unconfigured{}.ExplainStep(context.Background(), traversal.DFS, expandSnap, 2, 12)
	assert.ErrorIs(t, err, explain.ErrGatewayUnavailable)
	_, err = explain.Unconfigured{}.Chat(context.Background(), nil, traversal.BFS)
	assert.ErrorIs(t, err, explain.ErrGatewayUnavailable)
}

func TestDefaultExplanation(t *testing.T) {
	got := explain.DefaultExplanation(traversal.DFS, expandSnap)
	assert.True(t, strings.HasPrefix(got, expandSnap.Description+"\n\n"))
	assert.Contains(t, got, "In DFS, we explore the graph deeply")
	assert.Contains(t, got, "we use a stack data structure")

	got = explain.DefaultExplanation(traversal.BFS, traversal.Snapshot{Description: "x"})
	assert.Contains(t, got, "In BFS, we explore the graph broadly")
	assert.Contains(t, got, "we use a queue data structure")

	got = explain.DefaultExplanation(traversal.BFS, traversal.Snapshot{})
	assert.True(t, strings.HasPrefix(got, "This step shows the progression of the algorithm."))
}

func TestTruncateHistory(t *testing.T) {
	var h []explain.Message
	for i := 0; i < 9; i++ {
		h = append(h, explain.Message{Role: explain.RoleUser, Content: fmt.Sprint(i)})
	}
	got := explain.TruncateHistory(h)
	require.Len(t, got, explain.MaxHistory)
	assert.Equal(t, "3", got[0].Content)
	assert.Equal(t, "8", got[5].Content)

	short := explain.TruncateHistory(h[:2])
	assert.Len(t, short, 2)
}

func TestTutor_Fallbacks(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name string
		gw   explain.Gateway
	}{
		{"unconfigured", explain.Unconfigured{}},
		{"error", &stubGateway{err: errors.New("boom")}},
		{"empty", &stubGateway{reply: "   "}},
		{"timeout", &stubGateway{reply: "late", delay: time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := explain.NewTutor(tt.gw, explain.WithTimeout(20*time.Millisecond), explain.WithLogger(logger))
			assert.Equal(t, explain.DefaultExplanation(traversal.DFS, expandSnap),
				tu.ExplainStep(context.Background(), traversal.DFS, expandSnap, 2, 12))
			assert.Equal(t, explain.DefaultChatResponse(traversal.BFS),
				tu.Chat(context.Background(), nil, "why a queue?", traversal.BFS, nil))
		})
	}
	assert.Contains(t, logs.String(), "using local fallback")
}

func TestTutor_ChatMessages(t *testing.T) {
	stub := &stubGateway{reply: "Because FIFO."}
	tu := explain.NewTutor(stub)
	assert.False(t, explain.NewTutor(nil).Configured())
	assert.True(t, tu.Configured())

	var history []explain.Message
	for i := 0; i < 8; i++ {
		history = append(history, explain.Message{Role: explain.RoleAssistant, Content: fmt.Sprint(i)})
	}
	got := tu.Chat(context.Background(), history, "why?", traversal.DFS, &expandSnap)
	assert.Equal(t, "Because FIFO.", got)

	require.Len(t, stub.got, explain.MaxHistory+2)
	assert.Equal(t, "2", stub.got[0].Content)
	assert.Equal(t, explain.RoleSystem, stub.got[6].Role)
	assert.Contains(t, stub.got[6].Content, "Stack: [1, 2]")
	assert.Contains(t, stub.got[6].Content, "Current node: 0")
	assert.Equal(t, explain.Message{Role: explain.RoleUser, Content: "why?"}, stub.got[7])
}

func TestOpenAI_HTTP(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" The stack holds 1 and 2. "}}]}`))
	}))
	defer srv.Close()

	gw, err := explain.NewOpenAI(explain.Config{APIKey: "sk-test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	got, err := gw.ExplainStep(context.Background(), traversal.DFS, expandSnap, 2, 12)
	require.NoError(t, err)
	assert.Equal(t, "The stack holds 1 and 2.", got)

	assert.Equal(t, explain.DefaultOpenAIModel, body["model"])
	assert.EqualValues(t, 300, body["max_tokens"])
	assert.EqualValues(t, 0.5, body["temperature"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 2)
	user := msgs[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "step 3 of 12")
	assert.Contains(t, user, "Visited nodes: [0]")
	assert.Contains(t, user, "beginner student")

	_, err = gw.Chat(context.Background(), []explain.Message{{Role: explain.RoleUser, Content: "hi"}}, traversal.DFS)
	require.NoError(t, err)
	assert.EqualValues(t, 0.7, body["temperature"])
	first := body["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, explain.RoleSystem, first["role"])
	assert.Contains(t, first["content"], "particularly DFS")
}

func TestOpenAI_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer srv.Close()

	gw, err := explain.NewOpenAI(explain.Config{APIKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = gw.ExplainStep(context.Background(), traversal.BFS, expandSnap, 0, 1)
	require.ErrorIs(t, err, explain.ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestGemini_HTTP(t *testing.T) {
	var body struct {
		SystemInstruction struct {
			Parts []struct{ Text string } `json:"parts"`
		} `json:"systemInstruction"`
		Contents []struct {
			Role  string                  `json:"role"`
			Parts []struct{ Text string } `json:"parts"`
		} `json:"contents"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Queue "},{"text":"first."}]}}]}`))
	}))
	defer srv.Close()

	gw, err := explain.NewGemini(explain.Config{APIKey: "g-key", BaseURL: srv.URL, Model: "gemini-test"})
	require.NoError(t, err)

	got, err := gw.Chat(context.Background(), []explain.Message{
		{Role: explain.RoleUser, Content: "q1"},
		{Role: explain.RoleAssistant, Content: "a1"},
		explain.StateMessage(expandSnap),
		{Role: explain.RoleUser, Content: "q2"},
	}, traversal.BFS)
	require.NoError(t, err)
	assert.Equal(t, "Queue first.", got)

	require.Len(t, body.Contents, 3)
	assert.Equal(t, "model", body.Contents[1].Role)
	assert.Equal(t, "q2", body.Contents[2].Parts[0].Text)
	require.Len(t, body.SystemInstruction.Parts, 1)
	assert.Contains(t, body.SystemInstruction.Parts[0].Text, "particularly BFS")
	assert.Contains(t, body.SystemInstruction.Parts[0].Text, "Exploration order so far: [0]")
}

func TestGemini_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	gw, err := explain.NewGemini(explain.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = gw.ExplainStep(context.Background(), traversal.DFS, expandSnap, 0, 1)
	assert.ErrorIs(t, err, explain.ErrGatewayUnavailable)
}
