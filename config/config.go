// Package config loads settings for the kombi command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// MinVerbosity is the quietest log verbosity.
const MinVerbosity = -4

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "KOMBI_CONFIG"

// Config holds the user-adjustable settings.
type Config struct {
	// Prompt is printed before every line read by the REPL.
	Prompt string `toml:"prompt"`
	// Color enables colored error output.
	Color bool `toml:"color"`
	// Verbosity is passed to commonlog.Configure: -4 silences logging,
	// 0 logs notices and above, 2 and more includes debug output.
	Verbosity int `toml:"verbosity"`
	// LogFile receives log output instead of stderr when set.
	LogFile string `toml:"log_file"`
	// MaxDepth limits nested parentheses.
	MaxDepth int `toml:"max_depth"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:   "> ",
		Color:    true,
		MaxDepth: 256,
	}
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return parse(cfg, data)
}

// LoadDefault loads the file named by $KOMBI_CONFIG, or
// kombi/config.toml in the user config directory. A missing file
// yields the defaults.
func LoadDefault() (Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath returns the config file LoadDefault reads, or "" when no
// config directory is known.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kombi", "config.toml")
}

// Parse decodes TOML text on top of the defaults.
func Parse(data []byte) (Config, error) {
	return parse(Default(), data)
}

func parse(cfg Config, data []byte) (Config, error) {
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the command cannot use.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Verbosity < MinVerbosity {
		return fmt.Errorf("verbosity must be at least %d, got %d", MinVerbosity, c.Verbosity)
	}
	return nil
}
