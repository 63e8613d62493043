package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/graphtutor/explain"
	"github.com/katalvlaran/graphtutor/traversal"
)

// DefaultDotEnv is loaded when present and no other .env files are named.
const DefaultDotEnv = ".env"

// hclFile is the decoding target of a configuration file. Pointer fields
// stay nil when the attribute is absent.
type hclFile struct {
	LogLevel  *string      `hcl:"log_level,optional"`
	LogFormat *string      `hcl:"log_format,optional"`
	Listen    *string      `hcl:"listen,optional"`
	Provider  *hclProvider `hcl:"provider,block"`
	Graph     *hclGraph    `hcl:"graph,block"`
}

type hclProvider struct {
	Name    string  `hcl:"name,label"`
	APIKey  *string `hcl:"api_key,optional"`
	Model   *string `hcl:"model,optional"`
	BaseURL *string `hcl:"base_url,optional"`
	Level   *string `hcl:"level,optional"`
	Timeout *string `hcl:"timeout,optional"`
}

type hclGraph struct {
	Nodes     *int     `hcl:"nodes,optional"`
	Density   *float64 `hcl:"density,optional"`
	Directed  *bool    `hcl:"directed,optional"`
	Algorithm *string  `hcl:"algorithm,optional"`
	Start     *int     `hcl:"start,optional"`
	Seed      *int64   `hcl:"seed,optional"`
	MaxNodes  *int     `hcl:"max_nodes,optional"`
}

// Load resolves the configuration from defaults, .env files and the HCL
// file at path (skipped when path is empty). With no dotenv names the
// optional DefaultDotEnv is tried.
func Load(path string, dotenv ...string) (*Config, error) {
	if err := loadDotEnv(dotenv); err != nil {
		return nil, err
	}

	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	cfg.fillAPIKey()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fillAPIKey takes the provider key from the environment when unset.
func (c *Config) fillAPIKey() {
	if c.Provider.APIKey != "" {
		return
	}
	switch c.Provider.Name {
	case explain.ProviderOpenAI:
		c.Provider.APIKey = os.Getenv(EnvOpenAIKey)
	case explain.ProviderGemini:
		c.Provider.APIKey = os.Getenv(EnvGeminiKey)
	}
}

func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultDotEnv); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		files = []string{DefaultDotEnv}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files %v: %w", files, err)
	}

	return nil
}

// envObject exposes the process environment to HCL expressions. The
// credential variables always exist so files can reference them unset.
func envObject() cty.Value {
	vars := map[string]cty.Value{
		EnvOpenAIKey: cty.StringVal(""),
		EnvGeminiKey: cty.StringVal(""),
	}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return cty.ObjectVal(vars)
}

func decodeFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject()},
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return parsed.apply(cfg)
}

func (f *hclFile) apply(cfg *Config) error {
	setString(&cfg.LogLevel, f.LogLevel)
	setString(&cfg.LogFormat, f.LogFormat)
	setString(&cfg.Listen, f.Listen)

	if p := f.Provider; p != nil {
		cfg.Provider.Name = strings.ToLower(p.Name)
		setString(&cfg.Provider.APIKey, p.APIKey)
		setString(&cfg.Provider.Model, p.Model)
		setString(&cfg.Provider.BaseURL, p.BaseURL)
		setString(&cfg.Provider.Level, p.Level)
		if p.Timeout != nil {
			d, err := time.ParseDuration(*p.Timeout)
			if err != nil {
				return fmt.Errorf("%w: provider timeout: %v", ErrInvalidConfig, err)
			}
			cfg.Provider.Timeout = d
		}
	}

	if g := f.Graph; g != nil {
		if g.Nodes != nil {
			cfg.Graph.Nodes = *g.Nodes
		}
		if g.Density != nil {
			cfg.Graph.Density = *g.Density
		}
		if g.Directed != nil {
			cfg.Graph.Directed = *g.Directed
		}
		if g.Start != nil {
			cfg.Graph.Start = *g.Start
		}
		if g.Seed != nil {
			cfg.Graph.Seed = *g.Seed
		}
		if g.MaxNodes != nil {
			cfg.Graph.MaxNodes = *g.MaxNodes
		}
		if g.Algorithm != nil {
			alg, err := traversal.ParseAlgorithm(*g.Algorithm)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			cfg.Graph.Algorithm = alg
		}
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
