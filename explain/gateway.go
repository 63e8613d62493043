package explain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/graphtutor/traversal"
)

// Sentinel errors for providers.
var (
	// ErrGatewayUnavailable reports a provider that is unconfigured,
	// unreachable or answered with an error. Tutor recovers from it.
	ErrGatewayUnavailable = errors.New("explain: gateway unavailable")

	// ErrUnknownProvider is returned by New for unsupported provider names.
	ErrUnknownProvider = errors.New("explain: unknown provider")
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider names accepted by New.
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// MaxHistory is how many chat messages are forwarded to a provider.
const MaxHistory = 6

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gateway is the external text-generation capability.
//
// ExplainStep explains snapshot stepIndex (0-based) of a run of totalSteps.
// Chat answers the last user message of messages; messages may contain
// system turns carrying the current algorithm state.
type Gateway interface {
	ExplainStep(ctx context.Context, alg traversal.Algorithm, snap traversal.Snapshot, stepIndex, totalSteps int) (string, error)
	Chat(ctx context.Context, messages []Message, alg traversal.Algorithm) (string, error)
}

// Config configures an HTTP provider.
type Config struct {
	// APIKey is required; an empty key makes the constructor fail with ErrGatewayUnavailable.
	APIKey string
	// Model overrides the provider default.
	Model string
	// BaseURL overrides the provider endpoint (tests point it at httptest).
	BaseURL string
	// Level is the learner level named in prompts ("beginner" by default).
	Level string
	// MaxTokens caps the reply length (300 by default).
	MaxTokens int
	// HTTPClient is used for requests (a 30s-timeout client by default).
	HTTPClient *http.Client
}

const (
	defaultLevel     = "beginner"
	defaultMaxTokens = 300
	explainTemp      = 0.5
	chatTemp         = 0.7
	maxBodyBytes     = 1 << 20
)

// withDefaults fills unset fields.
func (c Config) withDefaults(model, baseURL string) Config {
	if c.Model == "" {
		c.Model = model
	}
	if c.BaseURL == "" {
		c.BaseURL = baseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Level == "" {
		c.Level = defaultLevel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	return c
}

// New selects a provider by name: "openai", "gemini", or "none"/"" for
// Unconfigured.
func New(provider string, cfg Config) (Gateway, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderNone:
		return Unconfigured{}, nil
	case ProviderOpenAI:
		return NewOpenAI(cfg)
	case ProviderGemini:
		return NewGemini(cfg)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
}

// Unconfigured is the Gateway used when no provider is set up.
type Unconfigured struct{}

// ExplainStep always reports ErrGatewayUnavailable.
func (Unconfigured) ExplainStep(context.Context, traversal.Algorithm, traversal.Snapshot, int, int) (string, error) {
	return "", fmt.Errorf("%w: no provider configured", ErrGatewayUnavailable)
}

// Chat always reports ErrGatewayUnavailable.
func (Unconfigured) Chat(context.Context, []Message, traversal.Algorithm) (string, error) {
	return "", fmt.Errorf("%w: no provider configured", ErrGatewayUnavailable)
}

// TruncateHistory keeps the last MaxHistory messages.
func TruncateHistory(history []Message) []Message {
	if len(history) <= MaxHistory {
		return append([]Message(nil), history...)
	}

	return append([]Message(nil), history[len(history)-MaxHistory:]...)
}
