package prompt

import (
	"errors"
	"fmt"
)

// ErrSubmissionPending is returned when a submission is requested while another is still running.
var ErrSubmissionPending = errors.New("a submission is already in progress")

// ValidationError is returned when a validator rejects a path.
// Its message is the validator's message, unchanged.
type ValidationError struct {
	Path  string
	Cause error
}

func (e *ValidationError) Error() string { return e.Cause.Error() }
func (e *ValidationError) Unwrap() error { return e.Cause }

// FilterError is returned when a filter fails or produces an unusable value.
type FilterError struct {
	Cause error
}

func (e *FilterError) Error() string { return fmt.Sprintf("filter failed: %v", e.Cause) }
func (e *FilterError) Unwrap() error { return e.Cause }

// UnexpectedError wraps any other failure in the submission pipeline, including panics.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string { return fmt.Sprintf("unexpected error: %v", e.Cause) }
func (e *UnexpectedError) Unwrap() error { return e.Cause }

// UnknownBuiltinError is returned when a validator or filter name is not recognised.
type UnknownBuiltinError struct {
	Kind string
	Name string
}

func (e *UnknownBuiltinError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
