package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/katalvlaran/graphtutor/traversal"
)

// Gemini defaults.
const (
	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Gemini is a Gateway backed by the generateContent endpoint.
type Gemini struct {
	cfg Config
}

// NewGemini returns a Gemini gateway, or ErrGatewayUnavailable when
// cfg.APIKey is empty.
func NewGemini(cfg Config) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: gemini: missing API key", ErrGatewayUnavailable)
	}

	return &Gemini{cfg: cfg.withDefaults(DefaultGeminiModel, DefaultGeminiBaseURL)}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		MaxOutputTokens int     `json:"maxOutputTokens"`
		Temperature     float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ExplainStep implements Gateway.
func (g *Gemini) ExplainStep(ctx context.Context, alg traversal.Algorithm, snap traversal.Snapshot, stepIndex, totalSteps int) (string, error) {
	msgs := []Message{
		{Role: RoleSystem, Content: tutorSystemPrompt},
		{Role: RoleUser, Content: stepPrompt(g.cfg.Level, alg, snap, stepIndex, totalSteps)},
	}

	return g.generate(ctx, msgs, explainTemp)
}

// Chat implements Gateway.
func (g *Gemini) Chat(ctx context.Context, messages []Message, alg traversal.Algorithm) (string, error) {
	msgs := make([]Message, 0, len(messages)+1)
	msgs = append(msgs, Message{Role: RoleSystem, Content: chatSystemPrompt(g.cfg.Level, alg)})
	msgs = append(msgs, messages...)

	return g.generate(ctx, msgs, chatTemp)
}

// toGemini folds system turns into one systemInstruction and maps the
// assistant role to "model".
func toGemini(msgs []Message) geminiRequest {
	var (
		req    geminiRequest
		system []string
	)
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			req.Contents = append(req.Contents, geminiContent{Role: "model", Parts: []geminiPart{{Text: m.Content}}})
		default:
			req.Contents = append(req.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: m.Content}}})
		}
	}
	if len(system) > 0 {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: strings.Join(system, "\n\n")}}}
	}

	return req
}

func (g *Gemini) generate(ctx context.Context, msgs []Message, temperature float64) (string, error) {
	body := toGemini(msgs)
	body.GenerationConfig.MaxOutputTokens = g.cfg.MaxTokens
	body.GenerationConfig.Temperature = temperature

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.cfg.BaseURL, url.PathEscape(g.cfg.Model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: failed to read response body: %v", ErrGatewayUnavailable, err)
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: gemini: status %d: undecodable body: %v", ErrGatewayUnavailable, resp.StatusCode, err)
	}
	if resp.StatusCode/100 != 2 {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("%w: gemini: status %d: %s", ErrGatewayUnavailable, resp.StatusCode, msg)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini: no candidates", ErrGatewayUnavailable)
	}

	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	return strings.TrimSpace(b.String()), nil
}
