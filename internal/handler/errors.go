package handler

import "errors"

var (
	// ErrNoCandidates means the capability returned nothing to recommend,
	// e.g. every hotel was above the requested max price.
	ErrNoCandidates = errors.New("no options match the request")

	// ErrNotACandidate means the recommendation does not copy one of the
	// records the capability returned.
	ErrNotACandidate = errors.New("recommendation is not among the search results")

	// ErrUnexpectedRecords means a capability returned a type the handler
	// does not know how to present.
	ErrUnexpectedRecords = errors.New("unexpected capability result")
)
