// Package pathutil provides the Path value used by the completion engine.
// A Path pairs the text the user sees with the working directory it is
// resolved against, so the absolute form never requires a filesystem lookup.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path is a filesystem location in display form, anchored to a working directory.
type Path struct {
	workingDir string
	value      string
	isDir      bool
}

// New creates a Path for value resolved against workingDir.
// workingDir is expected to be absolute.
func New(workingDir, value string) Path {
	return Path{workingDir: workingDir, value: value}
}

// NewEntry creates a Path for a listed directory entry whose kind is already known.
func NewEntry(workingDir, value string, isDir bool) Path {
	return Path{workingDir: workingDir, value: value, isDir: isDir}
}

// AbsolutePath returns the canonical absolute form.
// An empty display value resolves to the working directory itself.
func (p Path) AbsolutePath() string {
	if p.value == "" {
		return filepath.Clean(p.workingDir)
	}
	if filepath.IsAbs(p.value) {
		return filepath.Clean(p.value)
	}
	return filepath.Join(p.workingDir, p.value)
}

// DisplayPath returns the path as the user typed or selected it.
func (p Path) DisplayPath() string {
	return p.value
}

// WorkingDirectory returns the directory the display form is relative to.
func (p Path) WorkingDirectory() string {
	return p.workingDir
}

// Name returns the final element of the path.
func (p Path) Name() string {
	return filepath.Base(p.AbsolutePath())
}

// IsDir reports whether the path was listed as a directory.
// Paths built from user input are never marked as directories.
func (p Path) IsDir() bool {
	return p.isDir
}

func (p Path) String() string {
	return p.AbsolutePath()
}

// Split separates value into the directory part (up to and including the last
// separator) and the trailing name prefix.
//
//	"src/ma"  -> "src/", "ma"
//	"/etc/"   -> "/etc/", ""
//	"docs"    -> "", "docs"
func Split(value string) (dir, prefix string) {
	i := strings.LastIndexAny(value, separators)
	if i == -1 {
		return "", value
	}
	return value[:i+1], value[i+1:]
}

// Join appends name to a directory part produced by Split.
func Join(dir, name string) string {
	return dir + name
}

// Rel returns target relative to base, or target unchanged when no relative form exists.
func Rel(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}

// CanonicaliseDir makes dir absolute, resolves symlinks and checks that it is a directory.
func CanonicaliseDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &WorkingDirError{Dir: dir, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &WorkingDirError{Dir: abs, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkingDirError{Dir: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkingDirError{Dir: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

var separators = func() string {
	if filepath.Separator == '/' {
		return "/"
	}
	return "/" + string(filepath.Separator)
}()
