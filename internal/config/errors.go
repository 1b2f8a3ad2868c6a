package config

import "github.com/ayoisaiah/deepwork/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s (must be bolt or sqlite)",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between 1 and 65535, got %d",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
		Kind:    apperr.ErrInvalidInput,
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
		Kind:    apperr.ErrInvalidInput,
	}
)
