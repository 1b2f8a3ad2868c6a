package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyStorageDriver        = "storage.driver"
	keyStoragePath          = "storage.path"
	keyServerHost           = "server.host"
	keyServerPort           = "server.port"
	keySessionCmd           = "settings.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "logging.level"
	keyExportPath           = "export.path"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file with default values is written if none exists at configPath.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		if err := v.Unmarshal(c); err != nil {
			return errReadConfig.Wrap(err)
		}

		c.PathToConfig = configPath

		return nil
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyStorageDriver, "bolt")
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyServerHost, "127.0.0.1")
	v.SetDefault(keyServerPort, 8000)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyExportPath, "sessions_export.csv")
}
