package agent

import "errors"

var (
	ErrInvalidKind      = errors.New("invalid tool kind")
	ErrDuplicateTool    = errors.New("tool already registered")
	ErrInvalidArguments = errors.New("invalid arguments")
)
