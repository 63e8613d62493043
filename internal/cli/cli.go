package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/graphtutor/internal/config"
)

// Commands.
const (
	CommandServe = "serve"
	CommandMCP   = "mcp"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	Command    string
	ConfigPath string
	EnvFiles   []string

	// Overrides holds only the flags given explicitly.
	Overrides Overrides
}

// Overrides are flag values that replace configuration values. Nil
// fields were not given.
type Overrides struct {
	LogLevel  *string
	LogFormat *string
	Listen    *string
	Provider  *string
	Timeout   *time.Duration
	Seed      *int64
}

// Parse processes command-line arguments. It returns the Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("tutor", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
graphtutor - step through DFS and BFS, get explanations, practice with exercises.

Usage:
  tutor serve [options]   serve the JSON HTTP API
  tutor mcp [options]     serve MCP tools over stdio

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	envFlag := flagSet.String("env", "", "Comma-separated .env files to load (default: .env when present).")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	listenFlag := flagSet.String("listen", ":8080", "HTTP listen address for serve.")
	providerFlag := flagSet.String("provider", "none", "Explanation provider. Options: 'none', 'openai', 'gemini'.")
	timeoutFlag := flagSet.Duration("timeout", 10*time.Second, "Timeout of one provider call.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for the initial random graph (0 = clock).")

	if len(args) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	command, rest := args[0], args[1:]
	if strings.HasPrefix(command, "-") {
		command, rest = CommandServe, args
	}
	switch command {
	case CommandServe, CommandMCP:
	case "help":
		flagSet.Usage()
		return nil, true, nil
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: must be 'serve' or 'mcp'", command)}
	}

	if err := flagSet.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	opts := &Options{Command: command, ConfigPath: *configFlag}
	for _, f := range strings.Split(*envFlag, ",") {
		if f = strings.TrimSpace(f); f != "" {
			opts.EnvFiles = append(opts.EnvFiles, f)
		}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			v := strings.ToLower(*logLevelFlag)
			opts.Overrides.LogLevel = &v
		case "log-format":
			v := strings.ToLower(*logFormatFlag)
			opts.Overrides.LogFormat = &v
		case "listen":
			opts.Overrides.Listen = listenFlag
		case "provider":
			v := strings.ToLower(*providerFlag)
			opts.Overrides.Provider = &v
		case "timeout":
			opts.Overrides.Timeout = timeoutFlag
		case "seed":
			opts.Overrides.Seed = seedFlag
		}
	})

	return opts, false, nil
}

// Apply writes the overrides into cfg and re-validates it. A provider
// override also picks up the matching API key from the environment.
func (o *Overrides) Apply(cfg *config.Config, getenv func(string) string) error {
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.LogFormat != nil {
		cfg.LogFormat = *o.LogFormat
	}
	if o.Listen != nil {
		cfg.Listen = *o.Listen
	}
	if o.Timeout != nil {
		cfg.Provider.Timeout = *o.Timeout
	}
	if o.Seed != nil {
		cfg.Graph.Seed = *o.Seed
	}
	if o.Provider != nil && *o.Provider != cfg.Provider.Name {
		cfg.Provider.Name = *o.Provider
		cfg.Provider.APIKey = ""
		switch cfg.Provider.Name {
		case "openai":
			cfg.Provider.APIKey = getenv(config.EnvOpenAIKey)
		case "gemini":
			cfg.Provider.APIKey = getenv(config.EnvGeminiKey)
		}
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	return nil
}
