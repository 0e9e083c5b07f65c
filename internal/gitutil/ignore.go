package gitutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// FileSystem defines the minimal filesystem interface needed for gitignore matching.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Service implements gitignore pattern matching using go-git's gitignore matcher.
// Patterns are loaded from the .gitignore at root; paths outside root are never ignored.
type Service struct {
	root    string
	matcher gitignore.Matcher
}

// NewService creates a new gitignore service by loading .gitignore from root.
// Returns a service that never ignores if .gitignore doesn't exist (no error).
func NewService(root string, fs FileSystem) (*Service, error) {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := fs.Stat(gitignorePath); err != nil {
		return &Service{root: root}, nil
	}

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range splitLines(string(content)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &Service{root: root, matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore reports whether the absolute path matches any gitignore pattern.
func (g *Service) ShouldIgnore(absPath string, isDir bool) bool {
	if g.matcher == nil {
		return false
	}

	rel, err := filepath.Rel(g.root, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return g.matcher.Match(splitPath(rel), isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}

// splitLines splits content into lines, handling both \n and \r\n line endings.
func splitLines(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NoOpService is a gitignore service that never ignores any files.
// It is used when gitignore filtering is disabled or fails to initialize.
type NoOpService struct{}

// ShouldIgnore always returns false for NoOpService.
func (s *NoOpService) ShouldIgnore(absPath string, isDir bool) bool {
	return false
}
