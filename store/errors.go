package store

import (
	"errors"

	"github.com/ayoisaiah/deepwork/internal/apperr"
)

var (
	errDBLocked = errors.New(
		"is deepwork already running? The database is locked by another process",
	)

	errSessionMissing = &apperr.Error{
		Message: "session %d does not exist",
		Kind:    apperr.ErrNotFound,
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %q (expected bolt or sqlite)",
		Kind:    apperr.ErrInvalidInput,
	}
)
