package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/katalvlaran/graphtutor/traversal"
)

// OpenAI defaults.
const (
	DefaultOpenAIModel   = "gpt-4"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)

// OpenAI is a Gateway backed by the chat-completions endpoint.
type OpenAI struct {
	cfg Config
}

// NewOpenAI returns an OpenAI gateway, or ErrGatewayUnavailable when
// cfg.APIKey is empty.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: openai: missing API key", ErrGatewayUnavailable)
	}

	return &OpenAI{cfg: cfg.withDefaults(DefaultOpenAIModel, DefaultOpenAIBaseURL)}, nil
}

type openAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ExplainStep implements Gateway.
func (o *OpenAI) ExplainStep(ctx context.Context, alg traversal.Algorithm, snap traversal.Snapshot, stepIndex, totalSteps int) (string, error) {
	msgs := []Message{
		{Role: RoleSystem, Content: tutorSystemPrompt},
		{Role: RoleUser, Content: stepPrompt(o.cfg.Level, alg, snap, stepIndex, totalSteps)},
	}

	return o.complete(ctx, msgs, explainTemp)
}

// Chat implements Gateway.
func (o *OpenAI) Chat(ctx context.Context, messages []Message, alg traversal.Algorithm) (string, error) {
	msgs := make([]Message, 0, len(messages)+1)
	msgs = append(msgs, Message{Role: RoleSystem, Content: chatSystemPrompt(o.cfg.Level, alg)})
	msgs = append(msgs, messages...)

	return o.complete(ctx, msgs, chatTemp)
}

func (o *OpenAI) complete(ctx context.Context, msgs []Message, temperature float64) (string, error) {
	payload, err := json.Marshal(openAIRequest{
		Model:       o.cfg.Model,
		Messages:    msgs,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	resp, err := o.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: openai: failed to read response body: %v", ErrGatewayUnavailable, err)
	}

	var out openAIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: openai: status %d: undecodable body: %v", ErrGatewayUnavailable, resp.StatusCode, err)
	}
	if resp.StatusCode/100 != 2 {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("%w: openai: status %d: %s", ErrGatewayUnavailable, resp.StatusCode, msg)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: empty choices", ErrGatewayUnavailable)
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
