package store

import (
	"strings"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Open connects to the store selected by driver.
func Open(driver, path string) (DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverBolt, "":
		c, err := NewClient(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	case DriverSQLite:
		s, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
