// Package ui runs path questions in the terminal with Bubble Tea.
package ui

import (
	"context"
	"io"
	"log/slog"

	"github.com/Cyclone1070/pathprompt/internal/config"
	"github.com/Cyclone1070/pathprompt/internal/fsutil"
	"github.com/Cyclone1070/pathprompt/internal/interrupt"
	"github.com/Cyclone1070/pathprompt/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a run. Zero values fall back to defaults.
type Options struct {
	Config *config.Config
	FS     FileSystem
	Logger *slog.Logger

	Input  io.Reader
	Output io.Writer

	// Width is the wrap width for markdown messages.
	Width int
	// MarkdownStyle is a glamour standard style name; empty detects the terminal background.
	MarkdownStyle string
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.DefaultConfig()
	}
	if o.FS == nil {
		o.FS = fsutil.NewOSFileSystem()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Width <= 0 {
		o.Width = 80
	}
	return o
}

// Run asks questions in order and returns the answers by name.
// It returns ErrInterrupted when the user aborts.
func Run(ctx context.Context, questions []prompt.Question, opts Options) (prompt.Answers, error) {
	m := NewModel(questions, opts)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(m, programOpts...)

	relayCtx, stop := context.WithCancel(ctx)
	defer stop()
	interrupt.Relay(relayCtx, p)

	if _, err := p.Run(); err != nil {
		return m.Answers(), err
	}
	return m.Answers(), m.Err()
}
