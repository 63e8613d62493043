package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/internal/cli"
)

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, nil))
	assert.Contains(t, out.String(), "tutor serve")
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "loud"`), 0o600))
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, nil, 0o600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"serve", "-config", path, "-env", env})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "log_level")
}
