package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/graphtutor/explain"
	"github.com/katalvlaran/graphtutor/internal/cli"
	"github.com/katalvlaran/graphtutor/internal/config"
	"github.com/katalvlaran/graphtutor/internal/ctxlog"
	"github.com/katalvlaran/graphtutor/internal/httpapi"
	"github.com/katalvlaran/graphtutor/internal/mcptools"
	"github.com/katalvlaran/graphtutor/internal/session"
)

const shutdownTimeout = 5 * time.Second

// App holds the wired dependencies of one tutor process.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	sess    *session.Session
	version string
}

// New builds the logger, the explanation provider and the session. A
// provider that cannot be configured degrades to local explanations.
func New(logW io.Writer, cfg *config.Config, version string) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	gw, err := explain.New(cfg.Provider.Name, cfg.Provider.GatewayConfig())
	switch {
	case errors.Is(err, explain.ErrGatewayUnavailable):
		logger.Warn("explanation provider unavailable, using local explanations", "provider", cfg.Provider.Name, "error", err)
		gw = explain.Unconfigured{}
	case err != nil:
		return nil, fmt.Errorf("failed to create explanation provider: %w", err)
	}
	tutor := explain.NewTutor(gw,
		explain.WithTimeout(cfg.Provider.Timeout),
		explain.WithLogger(logger),
	)

	sess, err := session.New(tutor, cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	logger.Info("session ready",
		"session", sess.ID(),
		"nodes", sess.Graph().NodeCount(),
		"edges", sess.Graph().EdgeCount(),
		"algorithm", sess.Algorithm(),
		"provider", cfg.Provider.Name,
	)

	return &App{cfg: cfg, logger: logger, sess: sess, version: version}, nil
}

// Session returns the learner session.
func (a *App) Session() *session.Session { return a.sess }

// Run executes command until ctx is done.
func (a *App) Run(ctx context.Context, command string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	switch command {
	case cli.CommandServe:
		return a.serve(ctx)
	case cli.CommandMCP:
		return mcptools.New(a.sess, a.version, a.logger).Run(ctx)
	}

	return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
}

func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	srv := httpapi.New(a.sess, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", a.cfg.Listen)
		errCh <- srv.Listen(a.cfg.Listen, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.ShutdownWithContext(shutdownCtx)
}
