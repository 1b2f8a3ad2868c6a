package notify

import "github.com/ayoisaiah/deepwork/internal/apperr"

var errParseCmd = &apperr.Error{
	Message: "unable to parse session command",
	Kind:    apperr.ErrInvalidInput,
}
