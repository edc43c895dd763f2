package record

import "errors"

// Domain-specific errors for the record store.
var (
	ErrNotConfigured = errors.New("record store is not configured")
	ErrNotFound      = errors.New("record not found")
)
