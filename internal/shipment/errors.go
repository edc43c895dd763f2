package shipment

import "errors"

// Domain-specific errors for the shipment package.
var (
	ErrNotFound = errors.New("shipment not found")
	ErrEmptyID  = errors.New("shipment id is empty")
)
