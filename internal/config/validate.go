package config

import (
	"slices"
	"strings"
)

const maxPort = 65535

var (
	storageDrivers = []string{"bolt", "sqlite"}
	logLevels      = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if !slices.Contains(storageDrivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}

	if c.Server.Port == 0 || c.Server.Port > maxPort {
		return errInvalidPort.Fmt(c.Server.Port)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if !slices.Contains(logLevels, c.Logging.Level) {
		return errInvalidLogLevel.Fmt(c.Logging.Level)
	}

	return nil
}
