package app

import "github.com/ayoisaiah/deepwork/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "a session ID is required",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidID = &apperr.Error{
		Message: "session ID must be a positive integer, got %q",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidSort = &apperr.Error{
		Message: "unknown sort key %q (must be id, title, or created)",
		Kind:    apperr.ErrInvalidInput,
	}

	errNoConfig = &apperr.Error{
		Message: "configuration was not loaded",
	}

	errEmptyTitle = &apperr.Error{
		Message: "title cannot be empty",
		Kind:    apperr.ErrInvalidInput,
	}

	errPrompt = &apperr.Error{
		Message: "prompt failed",
	}
)
