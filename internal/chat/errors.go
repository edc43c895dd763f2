package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMissingFields = errors.New("missing required fields: name, phone, message")
	ErrMissingPhone  = errors.New("phone is required")
)
