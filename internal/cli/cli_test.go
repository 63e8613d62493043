package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/internal/cli"
	"github.com/katalvlaran/graphtutor/internal/config"
)

func TestParse_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"serve", "-h"}} {
		var out bytes.Buffer
		opts, exit, err := cli.Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, opts)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string][]string{
		"unknown command": {"deploy"},
		"unknown flag":    {"serve", "-colour"},
		"extra args":      {"mcp", "extra"},
		"bad timeout":     {"serve", "-timeout", "soon"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_Overrides(t *testing.T) {
	opts, exit, err := cli.Parse([]string{"mcp", "-config", "tutor.hcl", "-env", "a.env, b.env", "-log-level", "DEBUG", "-provider", "gemini", "-timeout", "3s", "-seed", "5"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, cli.CommandMCP, opts.Command)
	assert.Equal(t, "tutor.hcl", opts.ConfigPath)
	assert.Equal(t, []string{"a.env", "b.env"}, opts.EnvFiles)
	assert.Nil(t, opts.Overrides.Listen)
	assert.Nil(t, opts.Overrides.LogFormat)

	cfg := config.Default()
	env := map[string]string{config.EnvGeminiKey: "g-key"}
	require.NoError(t, opts.Overrides.Apply(cfg, func(k string) string { return env[k] }))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "gemini", cfg.Provider.Name)
	assert.Equal(t, "g-key", cfg.Provider.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, int64(5), cfg.Graph.Seed)
}

func TestParse_DefaultCommand(t *testing.T) {
	opts, _, err := cli.Parse([]string{"-listen", ":9000"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, cli.CommandServe, opts.Command)

	cfg := config.Default()
	require.NoError(t, opts.Overrides.Apply(cfg, func(string) string { return "" }))
	assert.Equal(t, ":9000", cfg.Listen)

	bad := "loud"
	o := cli.Overrides{LogLevel: &bad}
	var exitErr *cli.ExitError
	assert.ErrorAs(t, o.Apply(config.Default(), func(string) string { return "" }), &exitErr)
}
