package prompt

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/pathprompt/internal/pathutil"
)

// Answers maps question names to their answers.
type Answers map[string]any

// Validator checks one entered path. paths holds the entries confirmed so far
// in multi mode and is nil otherwise. A nil error accepts the path; any other
// error rejects it and its message is shown to the user.
type Validator func(ctx context.Context, path string, answers Answers, paths []string) error

// Filter transforms an answer before it is stored: a single path, or the
// whole []string list when a multi prompt is finished.
type Filter func(ctx context.Context, value any) (any, error)

// Question configures one path prompt.
type Question struct {
	Name    string
	Message string
	// Cwd resolves relative input. Defaults to the process working directory.
	Cwd string
	// Default seeds the input. A single prompt uses the first element; a multi
	// prompt consumes them in order, one per entry. Defaults to [Cwd].
	Default       []string
	Multi         bool
	DirectoryOnly bool
	Validate      Validator
	Filter        Filter
	// When gates the question on earlier answers. nil means always ask.
	When func(Answers) bool
}

// Normalize fills unset fields with their defaults and makes Cwd absolute.
func (q Question) Normalize() (Question, error) {
	if q.Cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return q, &pathutil.WorkingDirError{Dir: ".", Cause: err}
		}
		q.Cwd = wd
	}
	if !filepath.IsAbs(q.Cwd) {
		abs, err := filepath.Abs(q.Cwd)
		if err != nil {
			return q, &pathutil.WorkingDirError{Dir: q.Cwd, Cause: err}
		}
		q.Cwd = abs
	}
	if len(q.Default) == 0 {
		q.Default = []string{q.Cwd}
	}
	if q.Validate == nil {
		q.Validate = func(context.Context, string, Answers, []string) error { return nil }
	}
	if q.Filter == nil {
		q.Filter = func(_ context.Context, v any) (any, error) { return v, nil }
	}
	if q.When == nil {
		q.When = func(Answers) bool { return true }
	}
	return q, nil
}

// DefaultAt returns the seed for the entry after n confirmed entries.
// Once a multi prompt runs out of defaults new entries start empty.
func (q Question) DefaultAt(n int) string {
	if !q.Multi {
		n = 0
	}
	if n < len(q.Default) {
		return q.Default[n]
	}
	return ""
}
