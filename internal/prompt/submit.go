package prompt

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// SubmitResultMsg carries the outcome of a submission back to the event loop.
type SubmitResultMsg struct {
	ID    int
	Value any
	Err   error
}

// submission is a snapshot of everything the pipeline reads, so it can run
// off the event loop while the user keeps typing.
type submission struct {
	id       int
	path     string
	final    bool
	multi    bool
	answers  Answers
	paths    []string
	validate Validator
	filter   Filter
}

func (s submission) cmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return s.run(ctx)
	}
}

// run validates then filters. Every failure, panics included, becomes msg.Err.
func (s submission) run(ctx context.Context) (msg SubmitResultMsg) {
	msg.ID = s.id
	defer func() {
		if r := recover(); r != nil {
			msg = SubmitResultMsg{ID: s.id, Err: &UnexpectedError{Cause: fmt.Errorf("panic: %v", r)}}
		}
	}()

	var value any = s.path
	if s.final {
		value = s.paths
	} else {
		var paths []string
		if s.multi {
			paths = s.paths
		}
		if err := s.validate(ctx, s.path, s.answers, paths); err != nil {
			msg.Err = &ValidationError{Path: s.path, Cause: err}
			return msg
		}
	}

	filtered, err := s.applyFilter(ctx, value)
	if err != nil {
		msg.Err = err
		return msg
	}

	if s.multi && !s.final {
		if _, ok := filtered.(string); !ok {
			msg.Err = &FilterError{Cause: fmt.Errorf("filter returned %T for a single entry, want string", filtered)}
			return msg
		}
	}

	msg.Value = filtered
	return msg
}

func (s submission) applyFilter(ctx context.Context, value any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FilterError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	out, err = s.filter(ctx, value)
	if err != nil {
		return nil, &FilterError{Cause: err}
	}
	return out, nil
}
