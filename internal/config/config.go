// Package config loads robowasher configuration.
//
// The configuration file is chosen explicitly, by the --config flag or the
// ROBOWASHER_CONFIG environment variable. Nothing is discovered
// automatically; with neither set, Default applies.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ROBOWASHER_CONFIG"

// Config is the full robowasher configuration.
type Config struct {
	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`

	// Output is where robot status messages go: "-" for stdout, otherwise
	// a file path that is truncated at start.
	Output string `yaml:"output"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Output: "-",
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve picks the config file from flagPath, falling back to EnvVar.
// With neither set it returns Default.
func Resolve(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}
	if c.Output == "" {
		return errors.New("output: must be \"-\" or a file path")
	}
	return nil
}

// SlogLevel converts Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level: unknown level %q (want debug, info, warn or error)", l.Level)
	}
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "text":
		return slog.New(slog.NewTextHandler(w, options)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, options)), nil
	default:
		return nil, fmt.Errorf("log.format: unknown format %q (want text or json)", l.Format)
	}
}
