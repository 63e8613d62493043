package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/internal/config"
	"github.com/katalvlaran/graphtutor/traversal"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvOpenAIKey, "")
	cfg, err := config.Load("", writeFile(t, ".env", ""))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "none", cfg.Provider.Name)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 7, cfg.Graph.Nodes)
	assert.Equal(t, traversal.DFS, cfg.Graph.Algorithm)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("TUTOR_TEST_KEY", "sk-from-env")
	path := writeFile(t, "tutor.hcl", `
log_level  = "debug"
log_format = "json"
listen     = ":9090"

provider "openai" {
  api_key = env.TUTOR_TEST_KEY
  model   = "gpt-4o"
  timeout = "15s"
}

graph {
  nodes     = 9
  density   = 0.4
  directed  = true
  algorithm = "bfs"
  start     = 2
  seed      = 42
  max_nodes = 12
}
`)
	cfg, err := config.Load(path, writeFile(t, ".env", ""))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, config.ProviderConfig{
		Name:    "openai",
		APIKey:  "sk-from-env",
		Model:   "gpt-4o",
		Timeout: 15 * time.Second,
	}, cfg.Provider)
	assert.Equal(t, config.GraphConfig{
		Nodes: 9, Density: 0.4, Directed: true, Algorithm: traversal.BFS, Start: 2, Seed: 42, MaxNodes: 12,
	}, cfg.Graph)
	assert.Equal(t, "gpt-4o", cfg.Provider.GatewayConfig().Model)
}

func TestLoad_DotEnvKey(t *testing.T) {
	t.Setenv(config.EnvGeminiKey, "")
	require.NoError(t, os.Unsetenv(config.EnvGeminiKey))
	env := writeFile(t, ".env", "GEMINI_API_KEY=g-dotenv\n")
	path := writeFile(t, "tutor.hcl", "provider \"gemini\" {}\n")

	cfg, err := config.Load(path, env)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider.Name)
	assert.Equal(t, "g-dotenv", cfg.Provider.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	env := writeFile(t, ".env", "")
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `log_level = `},
		{"unknown attribute", `colour = "blue"`},
		{"bad level", `log_level = "loud"`},
		{"bad provider", `provider "llama" {}`},
		{"bad timeout", "provider \"openai\" {\n timeout = \"soon\"\n}"},
		{"bad algorithm", "graph {\n algorithm = \"dijkstra\"\n}"},
		{"start out of range", "graph {\n nodes = 3\n start = 3\n}"},
		{"density", "graph {\n density = 1.5\n}"},
		{"nodes above max", "graph {\n nodes = 20\n max_nodes = 15\n}"},
		{"max_nodes zero", "graph {\n max_nodes = 0\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "tutor.hcl", tt.body), env)
			assert.Error(t, err)
		})
	}

	_, err := config.Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.LogFormat = "xml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Graph.Nodes = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	assert.Equal(t, builder.DefaultMaxNodes, cfg.Graph.MaxNodes)
	cfg.Graph.Nodes = cfg.Graph.MaxNodes + 1
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
