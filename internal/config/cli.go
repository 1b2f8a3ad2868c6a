package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	DBDriver      *string
	DBPath        *string
	Host          *string
	Port          *uint
	LogLevel      *string
	SessionCmd    *string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set explicitly override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		var opts CLIOptions

		str := func(name string) *string {
			if !ctx.IsSet(name) {
				return nil
			}

			v := ctx.String(name)

			return &v
		}

		opts.DBDriver = str("db-driver")
		opts.DBPath = str("db")
		opts.Host = str("host")
		opts.LogLevel = str("log-level")
		opts.SessionCmd = str("session-cmd")
		opts.DisableNotify = ctx.Bool("disable-notification")

		if ctx.IsSet("port") {
			port := ctx.Uint("port")
			opts.Port = &port
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DBDriver != nil {
		c.Storage.Driver = *opts.DBDriver
	}

	if opts.DBPath != nil {
		c.Storage.Path = *opts.DBPath
	}

	if opts.Host != nil {
		c.Server.Host = *opts.Host
	}

	if opts.Port != nil {
		c.Server.Port = *opts.Port
	}

	if opts.LogLevel != nil {
		c.Logging.Level = *opts.LogLevel
	}

	if opts.SessionCmd != nil {
		c.Settings.Cmd = *opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}
}
