package reasoning

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaViolation is wrapped by every output that fails the target schema.
	ErrSchemaViolation = errors.New("output does not match schema")

	// ErrEmptyResponse means the model returned no text.
	ErrEmptyResponse = errors.New("empty model response")
)

// ValidationError lists the violations found in the last generated output.
type ValidationError struct {
	Task       string
	Violations []string
	// Cause is the Task.Check error that rejected the answer, if any.
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Task, ErrSchemaViolation, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrSchemaViolation, e.Cause}
	}
	return []error{ErrSchemaViolation}
}
