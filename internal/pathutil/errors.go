package pathutil

import (
	"errors"
	"fmt"
)

// -- Error Types --

// WorkingDirError is returned when a working directory cannot be used as a resolution root.
type WorkingDirError struct {
	Dir   string
	Cause error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("invalid working directory %s: %v", e.Dir, e.Cause)
}
func (e *WorkingDirError) Unwrap() error { return e.Cause }

// -- Sentinels --

var ErrNotADirectory = errors.New("not a directory")
