package query

import "errors"

var (
	ErrEmptyQuery = errors.New("query must not be empty")
	ErrTimeout    = errors.New("query timed out")
	ErrPanic      = errors.New("internal error while handling query")
)
