package orchestrator

import "errors"

var (
	// ErrBackend wraps every failure of the language backend during a turn.
	ErrBackend = errors.New("language backend failed")
)
