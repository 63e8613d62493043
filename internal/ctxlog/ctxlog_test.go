package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphtutor/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Info("hello", "node", 3)
	assert.Contains(t, buf.String(), "node=3")
}
