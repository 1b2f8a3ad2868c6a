// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "DEEPWORK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		p := &Paths{
			configDir:      "deepwork",
			configFileName: "config.yml",
			boltFileName:   "deepwork.db",
			sqliteFileName: "deepwork.sqlite",
			logFileName:    "deepwork.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// DBFilePath returns the default database file for the storage driver.
func DBFilePath(driver string) string {
	p := Must()

	if driver == "sqlite" {
		return filepath.Join(p.dataDir, p.sqliteFileName)
	}

	return filepath.Join(p.dataDir, p.boltFileName)
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("deepwork_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("deepwork_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("deepwork_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file: %w", err)
	}

	// DataFile creates the parent directories of the returned path
	placeholder, err := xdg.DataFile(filepath.Join(p.configDir, p.boltFileName))
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.dataDir = filepath.Dir(placeholder)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
