package store

import (
	"github.com/ayoisaiah/deepwork/models"
)

// DB is the database storage interface.
type DB interface {
	// GetSession returns the session with the given id, or nil if there
	// is no such session.
	GetSession(id int64) (*models.Session, error)
	// InsertSession saves a new session and assigns its ID.
	InsertSession(sess *models.Session) error
	// UpdateSession overwrites an existing session.
	UpdateSession(sess *models.Session) error
	// ListSessions returns every saved session ordered by id.
	ListSessions() ([]*models.Session, error)
	// DeleteSession removes a session together with its interruptions
	DeleteSession(id int64) error
	// PauseSession saves a pause record, assigning its ID, and overwrites
	// the session in the same transaction. Neither is written on failure.
	PauseSession(sess *models.Session, in *models.Interruption) error
	// CountInterruptions returns the number of pauses recorded for a session.
	CountInterruptions(sessionID int64) (int, error)
	// ListInterruptions returns the pauses of a session in the order they
	// were recorded
	ListInterruptions(sessionID int64) ([]*models.Interruption, error)
	// Close ends the database connection
	Close() error
}
