package ui

import (
	"log/slog"
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/autocomplete"
	"github.com/Cyclone1070/pathprompt/internal/config"
	"github.com/Cyclone1070/pathprompt/internal/gitutil"
	"github.com/Cyclone1070/pathprompt/internal/interrupt"
	"github.com/Cyclone1070/pathprompt/internal/matcher"
	"github.com/Cyclone1070/pathprompt/internal/prompt"
	"github.com/Cyclone1070/pathprompt/internal/ui/services"
	"github.com/Cyclone1070/pathprompt/internal/ui/views"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
)

// abortMsg is sent by the default interrupt listener.
type abortMsg struct{}

// Model asks a list of path questions one after another.
type Model struct {
	questions []prompt.Question
	idx       int
	answers   prompt.Answers

	cfg    *config.Config
	fs     FileSystem
	bus    *interrupt.Bus
	styles views.Styles
	md     services.MarkdownRenderer
	log    *slog.Logger

	screen  *screen
	ctrl    *prompt.Controller
	history []string

	err      error
	quitting bool
}

// NewModel creates the question runner. It installs the default interrupt
// listener, which aborts the run; active prompts displace it temporarily.
func NewModel(questions []prompt.Question, opts Options) *Model {
	opts = opts.withDefaults()

	m := &Model{
		questions: questions,
		answers:   prompt.Answers{},
		cfg:       opts.Config,
		fs:        opts.FS,
		bus:       interrupt.NewBus(),
		styles:    views.NewStyles(opts.Config.UI.Colors),
		log:       opts.Logger,
	}

	if opts.Config.UI.RenderMarkdown {
		md, err := services.NewGlamourRenderer(opts.Width, opts.MarkdownStyle)
		if err != nil {
			m.log.Warn("markdown rendering disabled", "error", err)
		} else {
			m.md = md
		}
	}

	m.bus.Add(func() tea.Cmd {
		return func() tea.Msg { return abortMsg{} }
	})
	return m
}

// Answers returns the answers collected so far, keyed by question name.
func (m *Model) Answers() prompt.Answers {
	return m.answers
}

// Err returns why the run stopped early, if it did.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.next())
}

// next starts the next question whose When gate passes, or quits when none is left.
func (m *Model) next() tea.Cmd {
	for ; m.idx < len(m.questions); m.idx++ {
		q := m.questions[m.idx]
		if q.When != nil && !q.When(m.answers) {
			m.log.Debug("question skipped", "question", q.Name)
			continue
		}
		return m.start(q)
	}

	m.screen, m.ctrl = nil, nil
	m.quitting = true
	return tea.Quit
}

func (m *Model) start(q prompt.Question) tea.Cmd {
	s := newScreen(services.RenderMarkdown(q.Message, m.md), q.Multi, m.cfg.UI.MaxVisibleMatches, m.styles)

	ctrl, err := prompt.New(q, prompt.Deps{
		Line:     s,
		Renderer: s,
		Bus:      m.bus,
		Lister:   m.lister(q.Cwd),
		Answers:  m.answers,
		Logger:   m.log,
	})
	if err != nil {
		m.err = err
		m.quitting = true
		return tea.Quit
	}

	m.screen, m.ctrl = s, ctrl
	s.attach(ctrl.Engine())
	name := ctrl.Question().Name
	ctrl.Run(func(value any) tea.Cmd {
		m.answers[name] = value
		m.history = append(m.history, s.View())
		m.idx++
		return m.next()
	})
	return nil
}

// lister builds the completion source for a question rooted at cwd.
func (m *Model) lister(cwd string) autocomplete.Lister {
	opts := []matcher.Option{
		matcher.WithMaxMatches(m.cfg.Completion.MaxMatches),
		matcher.WithHidden(m.cfg.Completion.ShowHidden),
		matcher.WithCaseMode(matcher.CaseMode(m.cfg.Completion.CaseMode)),
	}

	for _, pattern := range m.cfg.Completion.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			m.log.Warn("skipping exclude pattern", "pattern", pattern, "error", err)
			continue
		}
		opts = append(opts, matcher.WithExclude(g))
	}

	if m.cfg.Completion.RespectGitignore && cwd != "" {
		svc, err := gitutil.NewService(cwd, m.fs)
		if err != nil {
			m.log.Warn("ignoring .gitignore", "error", err)
			opts = append(opts, matcher.WithIgnore(&gitutil.NoOpService{}))
		} else {
			opts = append(opts, matcher.WithIgnore(svc))
		}
	}

	return matcher.New(m.fs, opts...)
}

func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.history...)
	if m.screen != nil && !m.quitting {
		sections = append(sections, m.screen.View())
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n") + "\n"
}
