package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/autocomplete"
	"github.com/Cyclone1070/pathprompt/internal/ui/models"
	"github.com/Cyclone1070/pathprompt/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// screen draws one question. It implements prompt.Renderer and prompt.LineReader.
type screen struct {
	state  models.State
	engine *autocomplete.Engine
	styles views.Styles
}

func newScreen(message string, multi bool, maxVisible int, styles views.Styles) *screen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	return &screen{
		state: models.State{
			Message:    message,
			Input:      ti,
			Multi:      multi,
			MatchIndex: -1,
			MaxVisible: maxVisible,
			Spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Muted)),
		},
		styles: styles,
	}
}

func (s *screen) attach(e *autocomplete.Engine) {
	s.engine = e
}

// Value is the current line buffer.
func (s *screen) Value() string {
	return s.state.Input.Value()
}

func (s *screen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.state.Input, cmd = s.state.Input.Update(msg)
	return cmd
}

func (s *screen) Render() {
	s.state.Error = ""
	s.sync()
}

func (s *screen) RenderFinal(value any) {
	s.state.Final = formatAnswer(value)
}

func (s *screen) RenderNewPrompt(confirmed string, e *autocomplete.Engine) {
	s.state.Confirmed = append(s.state.Confirmed, confirmed)
	s.state.Error = ""
	s.engine = e
	s.sync()
}

func (s *screen) RenderError(message string) {
	s.state.Error = message
}

func (s *screen) Kill() {
	s.state.Answered = true
	s.state.Input.Blur()
	if s.state.Final == "" {
		s.state.Final = formatAnswer(s.state.Confirmed)
	}
}

// sync shows the active match, or the typed value, in the line editor.
// The line is only replaced when it differs so the cursor survives ordinary typing.
func (s *screen) sync() {
	if s.engine == nil {
		return
	}

	text := s.engine.TypedPrefix()
	if m, ok := s.engine.CurrentMatch(); ok {
		text = m.DisplayPath()
	}
	if s.state.Input.Value() != text {
		s.state.Input.SetValue(text)
		s.state.Input.CursorEnd()
	}

	s.state.WorkingDir = s.engine.WorkingDirectory().AbsolutePath()
	s.state.MatchIndex = s.engine.MatchIndex()
	s.state.Matches = s.state.Matches[:0]
	for _, m := range s.engine.Matches() {
		name := m.DisplayPath()
		if m.IsDir() {
			name += string(filepath.Separator)
		}
		s.state.Matches = append(s.state.Matches, name)
	}
}

func (s *screen) View() string {
	return views.RenderPrompt(s.state, s.styles)
}

func formatAnswer(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return "(none)"
		}
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}
