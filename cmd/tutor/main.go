// Command tutor runs the graph traversal tutor.
//
//	tutor serve -config tutor.hcl     JSON HTTP API
//	tutor mcp -provider openai        MCP tools over stdio
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/graphtutor/internal/app"
	"github.com/katalvlaran/graphtutor/internal/cli"
	"github.com/katalvlaran/graphtutor/internal/config"
)

var version = "dev"

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the process logic; logs go to logW so stdout stays free for
// the MCP stdio transport.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath, opts.EnvFiles...)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	if err := opts.Overrides.Apply(cfg, os.Getenv); err != nil {
		return err
	}

	tutor, err := app.New(logW, cfg, version)
	if err != nil {
		return err
	}

	return tutor.Run(ctx, opts.Command)
}
