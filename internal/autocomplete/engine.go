// Package autocomplete tracks the state of a single path entry: what the user
// typed, which completion is active and the directory relative input resolves against.
package autocomplete

import (
	"sort"

	"github.com/Cyclone1070/pathprompt/internal/pathutil"
)

// Lister produces the candidates for a directory and name prefix.
type Lister interface {
	List(workingDir, prefix string, directoryOnly bool) []pathutil.Path
}

// Engine is the completion state for one path entry.
//
// It is FREE_TYPING while matchIndex is -1 and CYCLING otherwise. The typed
// value is never overwritten while cycling, so cancelling restores it exactly.
type Engine struct {
	lister        Lister
	workingDir    string
	directoryOnly bool

	typed      string
	matches    []pathutil.Path
	matchIndex int
}

// New creates an Engine in FREE_TYPING with defaultValue as the typed value.
// workingDir must be absolute.
func New(lister Lister, workingDir, defaultValue string, directoryOnly bool) *Engine {
	return &Engine{
		lister:        lister,
		workingDir:    workingDir,
		directoryOnly: directoryOnly,
		typed:         defaultValue,
		matchIndex:    -1,
	}
}

// SetPath replaces the typed value and leaves CYCLING. The filesystem is not consulted.
func (e *Engine) SetPath(raw string) {
	e.typed = raw
	e.reset()
}

// NextMatch steps to the next (forward) or previous candidate.
//
// From FREE_TYPING it lists candidates for the typed value and activates the
// first or last one. While CYCLING the directory is listed again and the step
// is taken from the active match's position in the fresh listing.
func (e *Engine) NextMatch(forward bool) error {
	dirPart, prefix := pathutil.Split(e.typed)
	listDir := pathutil.New(e.workingDir, dirPart).AbsolutePath()

	found := e.lister.List(listDir, prefix, e.directoryOnly)
	if len(found) == 0 {
		e.reset()
		return &NoMatchesError{Prefix: prefix, Dir: listDir}
	}

	matches := make([]pathutil.Path, len(found))
	for i, m := range found {
		matches[i] = pathutil.NewEntry(e.workingDir, pathutil.Join(dirPart, m.DisplayPath()), m.IsDir())
	}

	if e.matchIndex == -1 {
		e.matches = matches
		if forward {
			e.matchIndex = 0
		} else {
			e.matchIndex = len(matches) - 1
		}
		return nil
	}

	current := e.matches[e.matchIndex].DisplayPath()
	e.matches = matches
	e.matchIndex = step(matches, current, forward)
	return nil
}

// step returns the index after (or before) current in matches, wrapping around.
// If current is no longer listed, its sorted neighbour is used instead.
func step(matches []pathutil.Path, current string, forward bool) int {
	n := len(matches)
	pos := sort.Search(n, func(i int) bool { return matches[i].DisplayPath() >= current })

	if pos < n && matches[pos].DisplayPath() == current {
		if forward {
			return (pos + 1) % n
		}
		return (pos - 1 + n) % n
	}

	// pos is where current would be inserted
	if forward {
		return pos % n
	}
	return (pos - 1 + n) % n
}

// SelectMatch accepts the active match. A directory becomes the new working
// directory with an empty typed value; a file becomes the typed value.
func (e *Engine) SelectMatch() error {
	if e.matchIndex == -1 {
		return ErrNotCycling
	}

	match := e.matches[e.matchIndex]
	if match.IsDir() {
		e.workingDir = match.AbsolutePath()
		e.typed = ""
	} else {
		e.typed = match.DisplayPath()
	}
	e.reset()
	return nil
}

// CancelMatch leaves CYCLING and restores the typed value. It is a no-op in FREE_TYPING.
func (e *Engine) CancelMatch() {
	e.reset()
}

func (e *Engine) reset() {
	e.matches = nil
	e.matchIndex = -1
}

// Path returns the typed value resolved against the working directory.
func (e *Engine) Path() pathutil.Path {
	return pathutil.New(e.workingDir, e.typed)
}

// MatchIndex returns the active match index, or -1 when not cycling.
func (e *Engine) MatchIndex() int {
	return e.matchIndex
}

// WorkingDirectory returns the directory relative input resolves against.
func (e *Engine) WorkingDirectory() pathutil.Path {
	return pathutil.New(e.workingDir, "")
}

// DirectoryOnly reports whether only directories are offered as matches.
func (e *Engine) DirectoryOnly() bool {
	return e.directoryOnly
}

// Cycling reports whether a match is active.
func (e *Engine) Cycling() bool {
	return e.matchIndex != -1
}

// TypedPrefix returns the value typed since the last reset.
func (e *Engine) TypedPrefix() string {
	return e.typed
}

// Matches returns the candidates of the current cycle. It is empty in FREE_TYPING.
func (e *Engine) Matches() []pathutil.Path {
	out := make([]pathutil.Path, len(e.matches))
	copy(out, e.matches)
	return out
}

// CurrentMatch returns the active match and true while cycling.
func (e *Engine) CurrentMatch() (pathutil.Path, bool) {
	if e.matchIndex == -1 {
		return pathutil.Path{}, false
	}
	return e.matches[e.matchIndex], true
}
