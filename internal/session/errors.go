package session

import "github.com/ayoisaiah/deepwork/internal/apperr"

var (
	errSessionNotFound = &apperr.Error{
		Message: "session %d not found",
		Kind:    apperr.ErrNotFound,
	}

	errAlreadyStarted = &apperr.Error{
		Message: "session already started",
		Kind:    apperr.ErrInvalidTransition,
	}

	errNotActive = &apperr.Error{
		Message: "session is not active",
		Kind:    apperr.ErrInvalidTransition,
	}

	errNotPaused = &apperr.Error{
		Message: "session is not paused",
		Kind:    apperr.ErrInvalidTransition,
	}

	errCannotComplete = &apperr.Error{
		Message: "cannot complete session",
		Kind:    apperr.ErrInvalidTransition,
	}

	errNeverStarted = &apperr.Error{
		Message: "session was never started",
		Kind:    apperr.ErrInvalidState,
	}

	errEndTime = &apperr.Error{
		Message: "end time does not match status %s",
		Kind:    apperr.ErrInvalidState,
	}

	errEmptyTitle = &apperr.Error{
		Message: "title cannot be empty",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidDuration = &apperr.Error{
		Message: "scheduled duration must be a positive number of minutes, got %d",
		Kind:    apperr.ErrInvalidInput,
	}

	errEmptyReason = &apperr.Error{
		Message: "pause reason cannot be empty",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidTransition = &apperr.Error{
		Message: "cannot move session from %s to %s",
		Kind:    apperr.ErrInvalidTransition,
	}
)
