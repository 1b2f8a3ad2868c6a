package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/deepwork/internal/apperr"
	"github.com/ayoisaiah/deepwork/models"
)

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "sessions_export.csv", cfg.Export.Path)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, path, cfg.PathToConfig)
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := `storage:
  driver: sqlite
  path: /tmp/sessions.sqlite
server:
  port: 9090
logging:
  level: DEBUG
notifications:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/sessions.sqlite", cfg.Storage.Path)
	assert.Equal(t, uint(9090), cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{name: "defaults", modify: func(*Config) {}, ok: true},
		{name: "unknown driver", modify: func(c *Config) { c.Storage.Driver = "postgres" }},
		{name: "zero port", modify: func(c *Config) { c.Server.Port = 0 }},
		{name: "port too large", modify: func(c *Config) { c.Server.Port = 70000 }},
		{name: "unknown level", modify: func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{}
			c.Storage.Driver = "bolt"
			c.Server.Port = 8000
			c.Logging.Level = "info"

			tc.modify(c)

			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}

func TestApplyCLIOptions(t *testing.T) {
	c := &Config{}
	c.Storage.Driver = "bolt"
	c.Server.Host = "127.0.0.1"
	c.Server.Port = 8000
	c.Notifications.Enabled = true

	driver := "sqlite"
	port := uint(9000)

	applyCLIOptions(c, CLIOptions{
		DBDriver:      &driver,
		Port:          &port,
		DisableNotify: true,
	})

	assert.Equal(t, "sqlite", c.Storage.Driver)
	assert.Equal(t, "127.0.0.1:9000", c.Addr())
	assert.False(t, c.Notifications.Enabled)
}

func TestParseFilter(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("period", func(t *testing.T) {
		f, err := ParseFilter(FilterOptions{Period: "7days"}, now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), f.Since)
		assert.Equal(t, time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC), f.Until)
	})

	t.Run("yesterday", func(t *testing.T) {
		f, err := ParseFilter(FilterOptions{Period: "yesterday"}, now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), f.Since)
		assert.Equal(t, time.Date(2026, 10, 14, 23, 59, 59, 0, time.UTC), f.Until)
	})

	t.Run("all time", func(t *testing.T) {
		f, err := ParseFilter(FilterOptions{Period: "all-time"}, now)
		require.NoError(t, err)

		assert.True(t, f.Since.IsZero())
		assert.True(t, f.Until.IsZero())
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := ParseFilter(FilterOptions{Period: "fortnight"}, now)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("since date", func(t *testing.T) {
		f, err := ParseFilter(FilterOptions{Since: "2026-10-01"}, now)
		require.NoError(t, err)

		assert.Equal(t, 2026, f.Since.Year())
		assert.Equal(t, time.October, f.Since.Month())
		assert.Equal(t, 1, f.Since.Day())
		assert.True(t, f.Until.IsZero())
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := ParseFilter(FilterOptions{
			Since: "2026-10-10",
			Until: "2026-10-01",
		}, now)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("statuses", func(t *testing.T) {
		f, err := ParseFilter(FilterOptions{
			Status: []string{"completed,Overdue", "interrupted"},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, []models.Status{
			models.StatusCompleted,
			models.StatusOverdue,
			models.StatusInterrupted,
		}, f.Statuses)
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := ParseFilter(FilterOptions{Status: []string{"done"}}, now)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}
