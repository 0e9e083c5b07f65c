// Package matcher lists the filesystem entries that can complete a typed prefix.
package matcher

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/pathutil"
	"github.com/gobwas/glob"
)

// CaseMode selects how names are compared against the typed prefix.
type CaseMode string

const (
	// CaseAuto folds case on hosts whose default filesystems are case-insensitive.
	CaseAuto        CaseMode = "auto"
	CaseSensitive   CaseMode = "sensitive"
	CaseInsensitive CaseMode = "insensitive"
)

// fileSystem is the read-only subset of the filesystem the matcher needs.
type fileSystem interface {
	ListDir(path string) ([]os.FileInfo, error)
	Stat(path string) (os.FileInfo, error)
}

// ignoreMatcher decides whether an entry is hidden by ignore rules.
type ignoreMatcher interface {
	ShouldIgnore(absPath string, isDir bool) bool
}

// Option configures a PathMatcher.
type Option func(*PathMatcher)

// WithIgnore drops entries the ignore matcher rejects.
func WithIgnore(ignore ignoreMatcher) Option {
	return func(m *PathMatcher) { m.ignore = ignore }
}

// WithExclude drops entries whose name matches any of the patterns.
func WithExclude(patterns ...glob.Glob) Option {
	return func(m *PathMatcher) { m.exclude = append(m.exclude, patterns...) }
}

// WithMaxMatches caps the number of returned entries after sorting. 0 means unlimited.
func WithMaxMatches(n int) Option {
	return func(m *PathMatcher) { m.maxMatches = n }
}

// WithHidden controls whether dot-entries are listed when the prefix does not start with ".".
func WithHidden(show bool) Option {
	return func(m *PathMatcher) { m.showHidden = show }
}

// WithCaseMode sets the prefix comparison policy.
func WithCaseMode(mode CaseMode) Option {
	return func(m *PathMatcher) { m.foldCase = foldCase(mode) }
}

// PathMatcher lists directory entries matching a prefix.
// It reads the filesystem on every call; listings are never cached.
type PathMatcher struct {
	fs         fileSystem
	ignore     ignoreMatcher
	exclude    []glob.Glob
	maxMatches int
	showHidden bool
	foldCase   bool
}

// New creates a PathMatcher. By default hidden entries are listed, nothing is
// ignored, the result is unbounded and case follows the host.
func New(fs fileSystem, opts ...Option) *PathMatcher {
	m := &PathMatcher{
		fs:         fs,
		showHidden: true,
		foldCase:   foldCase(CaseAuto),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// List returns the entries of workingDir whose names start with prefix, sorted by name.
// With directoryOnly set only directories are returned. A missing, unreadable or
// non-directory workingDir yields an empty result rather than an error.
func (m *PathMatcher) List(workingDir, prefix string, directoryOnly bool) []pathutil.Path {
	infos, err := m.fs.ListDir(workingDir)
	if err != nil {
		return []pathutil.Path{}
	}

	hideDot := !m.showHidden && !strings.HasPrefix(prefix, ".")

	matches := make([]pathutil.Path, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !m.hasPrefix(name, prefix) {
			continue
		}
		if hideDot && strings.HasPrefix(name, ".") {
			continue
		}
		if m.excluded(name) {
			continue
		}

		abs := filepath.Join(workingDir, name)
		isDir := m.isDir(abs, info)
		if directoryOnly && !isDir {
			continue
		}
		if m.ignore != nil && m.ignore.ShouldIgnore(abs, isDir) {
			continue
		}

		matches = append(matches, pathutil.NewEntry(workingDir, name, isDir))
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DisplayPath() < matches[j].DisplayPath()
	})

	if m.maxMatches > 0 && len(matches) > m.maxMatches {
		matches = matches[:m.maxMatches]
	}

	return matches
}

func (m *PathMatcher) hasPrefix(name, prefix string) bool {
	if m.foldCase {
		return strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix))
	}
	return strings.HasPrefix(name, prefix)
}

func (m *PathMatcher) excluded(name string) bool {
	for _, g := range m.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// isDir follows symlinks so a link to a directory completes like one.
func (m *PathMatcher) isDir(abs string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := m.fs.Stat(abs)
	if err != nil {
		return false
	}
	return target.IsDir()
}

func foldCase(mode CaseMode) bool {
	switch mode {
	case CaseSensitive:
		return false
	case CaseInsensitive:
		return true
	default:
		return runtime.GOOS == "darwin" || runtime.GOOS == "windows"
	}
}
