package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/explain"
	"github.com/katalvlaran/graphtutor/traversal"
)

// ErrInvalidConfig reports a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables holding provider credentials.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Config is the resolved tutor configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	Listen    string

	Provider ProviderConfig
	Graph    GraphConfig
}

// ProviderConfig selects and configures the explanation provider.
type ProviderConfig struct {
	// Name is "none", "openai" or "gemini".
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Level   string
	Timeout time.Duration
}

// GraphConfig holds the initial session graph settings.
type GraphConfig struct {
	Nodes     int
	Density   float64
	Directed  bool
	Algorithm traversal.Algorithm
	Start     int
	// Seed fixes the random graph; 0 seeds from the clock.
	Seed int64
	// MaxNodes caps every graph a learner can request.
	MaxNodes int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Listen:    ":8080",
		Provider: ProviderConfig{
			Name:    explain.ProviderNone,
			Timeout: explain.DefaultTimeout,
		},
		Graph: GraphConfig{
			Nodes:     7,
			Density:   0.3,
			Algorithm: traversal.DFS,
			MaxNodes:  builder.DefaultMaxNodes,
		},
	}
}

// GatewayConfig converts the provider settings for explain.New.
func (p ProviderConfig) GatewayConfig() explain.Config {
	return explain.Config{
		APIKey:  p.APIKey,
		Model:   p.Model,
		BaseURL: p.BaseURL,
		Level:   p.Level,
	}
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q must be 'text' or 'json'", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	switch c.Provider.Name {
	case explain.ProviderNone, explain.ProviderOpenAI, explain.ProviderGemini:
	default:
		return fmt.Errorf("%w: provider %q must be 'none', 'openai', or 'gemini'", ErrInvalidConfig, c.Provider.Name)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("%w: provider timeout must be positive", ErrInvalidConfig)
	}
	g := c.Graph
	if g.Nodes < 1 {
		return fmt.Errorf("%w: graph nodes %d < 1", ErrInvalidConfig, g.Nodes)
	}
	if g.MaxNodes < 1 {
		return fmt.Errorf("%w: graph max_nodes %d < 1", ErrInvalidConfig, g.MaxNodes)
	}
	if g.Nodes > g.MaxNodes {
		return fmt.Errorf("%w: graph nodes %d > max_nodes %d", ErrInvalidConfig, g.Nodes, g.MaxNodes)
	}
	if g.Density < 0 || g.Density > 1 {
		return fmt.Errorf("%w: graph density %v not in [0,1]", ErrInvalidConfig, g.Density)
	}
	if !g.Algorithm.Valid() {
		return fmt.Errorf("%w: graph algorithm %q", ErrInvalidConfig, string(g.Algorithm))
	}
	if g.Start < 0 || g.Start >= g.Nodes {
		return fmt.Errorf("%w: graph start %d not in [0,%d)", ErrInvalidConfig, g.Start, g.Nodes)
	}

	return nil
}
