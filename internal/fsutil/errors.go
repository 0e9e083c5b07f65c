package fsutil

import "fmt"

// ListDirError is returned when a directory cannot be listed.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}

func (e *ListDirError) Unwrap() error {
	return e.Cause
}

func (e *ListDirError) IOError() bool {
	return true
}
