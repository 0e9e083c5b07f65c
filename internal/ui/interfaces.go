package ui

import (
	"errors"
	"os"
)

// ErrInterrupted is returned when the user aborts the questions with an interrupt.
var ErrInterrupted = errors.New("interrupted")

// FileSystem is the read-only filesystem access the prompts need:
// directory listings for completion, Stat for validators and ReadFile for .gitignore.
type FileSystem interface {
	ListDir(path string) ([]os.FileInfo, error)
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}
