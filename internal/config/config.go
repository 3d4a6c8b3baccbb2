// Package config loads the converter's optional YAML configuration.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "SCS_CONVERTER_CONFIG"

// Syntax error policies.
const (
	OnErrorRollback = "rollback"
	OnErrorKeep     = "keep"
)

//go:embed schema.cue
var schemaCUE string

// Config is the converter configuration. Every field has a default, so an
// absent file is a valid configuration.
type Config struct {
	// Extension selects source files during discovery (default ".scs")
	Extension string `yaml:"extension" json:"extension"`
	// Exclude lists doublestar globs, relative to the input directory,
	// of files and directories to skip
	Exclude []string `yaml:"exclude" json:"exclude"`
	// MaxDepth bounds source nesting (default 256)
	MaxDepth int `yaml:"max_depth" json:"max_depth"`
	// OnSyntaxError is "rollback" (discard a failing file's partial
	// output) or "keep"
	OnSyntaxError string `yaml:"on_syntax_error" json:"on_syntax_error"`
	// IndexDB is a SQLite path; when set, every run is recorded there
	IndexDB string `yaml:"index_db" json:"index_db"`
	// MetricsFile is a Prometheus textfile path written after each run
	MetricsFile string `yaml:"metrics_file" json:"metrics_file"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`
	// LogFormat is text or json
	LogFormat string `yaml:"log_format" json:"log_format"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Extension:     ".scs",
		MaxDepth:      256,
		OnSyntaxError: OnErrorRollback,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads the file named by SCS_CONVERTER_CONFIG, or returns the
// defaults when the variable is unset or empty.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile reads and validates a YAML config file. Fields missing from
// the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against the embedded CUE schema and
// the exclude patterns for glob syntax.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("exclude: invalid pattern %q", pattern)
		}
	}
	return nil
}

// Rollback reports whether failing files are rolled back.
func (c *Config) Rollback() bool {
	return c.OnSyntaxError != OnErrorKeep
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
