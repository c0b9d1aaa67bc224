// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	// DataDir holds the workspace database. Defaults to the XDG data home.
	DataDir string `mapstructure:"data_dir"`

	// AutosaveInterval is the quiet period before a pending autosave fires.
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`

	// Preview configures the local preview server.
	Preview PreviewConfig `mapstructure:"preview"`

	// Theme selects the TUI palette: "dark" or "light".
	Theme string `mapstructure:"theme"`

	// Logging configures the session log file.
	Logging LoggingConfig `mapstructure:"logging"`
}

// PreviewConfig configures the preview execution surface.
type PreviewConfig struct {
	// ListenAddr is the loopback address to bind; port 0 picks a free one.
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load reads $XDG_CONFIG_HOME/minide/config.yaml, falling back to defaults
// when no file exists. Environment variables use the MINIDE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "minide"))
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "minide"))
	}

	v.SetEnvPrefix("MINIDE")
	v.AutomaticEnv()

	v.SetDefault("data_dir", filepath.Join(xdg.DataHome, "minide"))
	v.SetDefault("autosave_interval", 900*time.Millisecond)
	v.SetDefault("preview.listen_addr", "127.0.0.1:0")
	v.SetDefault("theme", "dark")
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return nil, fmt.Errorf("invalid theme %q: must be dark or light", cfg.Theme)
	}
	return &cfg, nil
}
