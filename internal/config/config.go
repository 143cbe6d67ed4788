// Package config provides YAML-based configuration loading for huskctl.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/husk-sh/husk/internal/peel"
	"github.com/husk-sh/husk/internal/textutil"
)

// Config is the root tool configuration.
type Config struct {
	// MaxDepth caps how many layers a peel strips by default.
	MaxDepth int `mapstructure:"max_depth"`

	// PreviewLength bounds layer previews in peel traces.
	PreviewLength int `mapstructure:"preview_length"`

	// RecipeDir is where saved encoding recipes live.
	RecipeDir string `mapstructure:"recipe_dir"`

	// Log holds logging configuration.
	Log LogConfig `mapstructure:"log"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		MaxDepth:      peel.DefaultMaxDepth,
		PreviewLength: textutil.DefaultPreviewLength,
		RecipeDir:     defaultRecipeDir(),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from the given YAML file, falling back to
// $HOME/.config/husk/config.yaml and then to defaults. An explicit path that
// cannot be read is an error; the implicit fallback is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")

	switch {
	case path != "":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		fallback := filepath.Join(home, ".config", "husk", "config.yaml")
		if _, err := os.Stat(fallback); err != nil {
			return cfg, nil
		}
		v.SetConfigFile(fallback)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", fallback, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects bad configurations before any of the knobs are used.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("preview_length must be positive, got %d", c.PreviewLength)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func defaultRecipeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "husk", "recipes")
}
