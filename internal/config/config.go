// Package config loads deepwork settings from the config file and
// command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ayoisaiah/deepwork/internal/pathutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Server        ServerConfig       `mapstructure:"server"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Logging       LoggingConfig      `mapstructure:"logging"`
		Export        ExportConfig       `mapstructure:"export"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		PathToConfig  string
	}

	// StorageConfig selects the database backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// ServerConfig holds the HTTP API settings
	ServerConfig struct {
		Host string `mapstructure:"host"`
		Port uint   `mapstructure:"port"`
	}

	// SettingsConfig holds behaviour settings
	SettingsConfig struct {
		// Cmd runs after a session reaches a terminal status
		Cmd string `mapstructure:"cmd"`
	}

	// LoggingConfig holds log settings
	LoggingConfig struct {
		Level string `mapstructure:"level"`
	}

	// ExportConfig holds CSV export settings
	ExportConfig struct {
		Path string `mapstructure:"path"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Addr returns the host:port the API server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithDefaultPaths fills in the database path from the XDG data directory
// when none is configured. pathutil.Initialize must have been called.
func WithDefaultPaths() Option {
	return func(c *Config) error {
		if c.Storage.Path == "" {
			c.Storage.Path = pathutil.DBFilePath(
				strings.ToLower(strings.TrimSpace(c.Storage.Driver)),
			)
		}

		return nil
	}
}
