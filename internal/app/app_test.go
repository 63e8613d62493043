package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/internal/cli"
	"github.com/katalvlaran/graphtutor/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger("bogus", "text", &buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestNew_DegradesMissingKey(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.Default()
	cfg.Provider.Name = "openai"
	cfg.Graph.Seed = 1

	a, err := New(&logs, cfg, "test")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "explanation provider unavailable")
	assert.Equal(t, 7, a.Session().Graph().NodeCount())
}

func TestRun_UnknownCommand(t *testing.T) {
	cfg := config.Default()
	a, err := New(&bytes.Buffer{}, cfg, "test")
	require.NoError(t, err)

	err = a.Run(context.Background(), "deploy")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
