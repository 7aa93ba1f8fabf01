package router

import "errors"

var (
	// ErrUnknownIntent is returned when no handler is registered for an intent.
	ErrUnknownIntent = errors.New("unknown intent")
)
