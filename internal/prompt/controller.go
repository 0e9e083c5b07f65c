// Package prompt implements the keyboard state machine of a path prompt.
//
// A Controller maps keypresses onto an autocomplete.Engine, runs the
// validate and filter pipeline on submission, accumulates entries in multi
// mode and owns the interrupt bus while the prompt is active.
package prompt

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/Cyclone1070/pathprompt/internal/autocomplete"
	"github.com/Cyclone1070/pathprompt/internal/interrupt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LineReader exposes the current contents of the line editor.
type LineReader interface {
	Value() string
}

// Renderer draws the prompt. The controller calls it after every state change.
type Renderer interface {
	Render()
	RenderFinal(value any)
	RenderNewPrompt(confirmed string, engine *autocomplete.Engine)
	RenderError(message string)
	Kill()
}

// Deps are the collaborators a Controller is built from.
type Deps struct {
	Line     LineReader
	Renderer Renderer
	Bus      *interrupt.Bus
	Lister   autocomplete.Lister
	Answers  Answers
	Logger   *slog.Logger
}

// Status is the lifecycle state of a prompt.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusAnswered
	StatusClosed
)

type pending struct {
	id     int
	final  bool
	path   string
	cancel context.CancelFunc
}

// Controller runs one path question.
type Controller struct {
	q    Question
	deps Deps
	keys KeyMap
	log  *slog.Logger

	engine       *autocomplete.Engine
	paths        []string
	isTryingExit bool
	status       Status

	lease   *interrupt.Lease
	done    func(value any) tea.Cmd
	nextID  int
	pending *pending
}

// New creates a Controller for q. The question is normalized first.
func New(q Question, deps Deps) (*Controller, error) {
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Answers == nil {
		deps.Answers = Answers{}
	}

	return &Controller{
		q:      q,
		deps:   deps,
		keys:   DefaultKeyMap(),
		log:    deps.Logger.With("question", q.Name),
		engine: autocomplete.New(deps.Lister, q.Cwd, q.DefaultAt(0), q.DirectoryOnly),
	}, nil
}

// Run activates the prompt: it takes over the interrupt bus and draws the first frame.
// done is called once, on the event loop, with the final answer.
func (c *Controller) Run(done func(value any) tea.Cmd) {
	c.done = done
	c.status = StatusActive
	c.lease = c.deps.Bus.Acquire(c.onInterrupt)
	c.deps.Renderer.Render()
}

// Close deactivates the prompt without answering it. Safe to call more than once.
func (c *Controller) Close() {
	c.cancelPending()
	c.release()
	if c.status == StatusActive {
		c.status = StatusClosed
	}
}

func (c *Controller) Engine() *autocomplete.Engine { return c.engine }
func (c *Controller) Question() Question { return c.q }
func (c *Controller) Status() Status { return c.status }
func (c *Controller) Keys() KeyMap { return c.keys }

// Paths returns the entries confirmed so far in multi mode.
func (c *Controller) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Pending reports whether a submission is running.
func (c *Controller) Pending() bool {
	return c.pending != nil
}

// HandleKey applies one keypress.
func (c *Controller) HandleKey(k Key) tea.Cmd {
	if c.status != StatusActive || k.Ctrl {
		return nil
	}
	c.isTryingExit = false

	switch {
	case k.Text:
		c.edit()
		return nil

	case key.Matches(k, c.keys.Next, c.keys.Prev):
		if err := c.engine.NextMatch(!key.Matches(k, c.keys.Prev)); err != nil {
			c.deps.Renderer.RenderError(err.Error())
			return nil
		}
		c.supersede("cycling")
		c.deps.Renderer.Render()
		return nil

	case key.Matches(k, c.keys.Confirm):
		if c.engine.Cycling() {
			_ = c.engine.SelectMatch()
			c.deps.Renderer.Render()
			return nil
		}
		return c.submit(false)

	case key.Matches(k, c.keys.Cancel):
		switch {
		case c.engine.Cycling():
			c.engine.CancelMatch()
		case c.pending != nil:
			c.log.Debug("submission cancelled", "id", c.pending.id)
			c.cancelPending()
		case c.q.Multi:
			return c.submit(true)
		}
		c.deps.Renderer.Render()
		return nil

	default:
		c.edit()
		return nil
	}
}

// edit copies the line buffer into the engine.
func (c *Controller) edit() {
	c.engine.SetPath(c.deps.Line.Value())
	if c.pending != nil && c.engine.Path().AbsolutePath() != c.pending.path {
		c.supersede("edited")
	}
	c.deps.Renderer.Render()
}

// supersede drops a running submission once the entry on screen no longer
// matches what was submitted.
func (c *Controller) supersede(reason string) {
	if c.pending == nil {
		return
	}
	c.log.Debug("submission superseded", "id", c.pending.id, "reason", reason)
	c.cancelPending()
}

func (c *Controller) onInterrupt() tea.Cmd {
	switch {
	case c.engine.Cycling():
		c.engine.CancelMatch()
		c.deps.Renderer.Render()
		return nil
	case c.q.Multi && !c.isTryingExit:
		c.isTryingExit = true
		c.cancelPending()
		return c.submit(true)
	default:
		c.log.Debug("interrupt passed on to previous listeners")
		c.Close()
		return c.deps.Bus.Emit()
	}
}

// submit starts the validate/filter pipeline for the current entry, or for
// the accumulated list when final is set.
func (c *Controller) submit(final bool) tea.Cmd {
	if c.pending != nil {
		c.log.Debug("submission ignored", "error", ErrSubmissionPending)
		return nil
	}

	c.nextID++
	ctx, cancel := context.WithCancel(context.Background())
	path := c.engine.Path().AbsolutePath()
	c.pending = &pending{id: c.nextID, final: final, path: path, cancel: cancel}

	s := submission{
		id:       c.nextID,
		path:     path,
		final:    final,
		multi:    c.q.Multi,
		answers:  maps.Clone(c.deps.Answers),
		paths:    c.Paths(),
		validate: c.q.Validate,
		filter:   c.q.Filter,
	}
	c.log.Debug("submitting", "id", s.id, "path", s.path, "final", final)
	return s.cmd(ctx)
}

// HandleResult applies a finished submission. Results of cancelled or
// superseded submissions are dropped.
func (c *Controller) HandleResult(msg SubmitResultMsg) tea.Cmd {
	if c.status != StatusActive || c.pending == nil || c.pending.id != msg.ID {
		c.log.Debug("stale submission result dropped", "id", msg.ID)
		return nil
	}
	final := c.pending.final
	c.cancelPending()

	if msg.Err != nil {
		var verr *ValidationError
		if errors.As(msg.Err, &verr) {
			c.log.Debug("validation failed", "path", verr.Path, "error", verr.Cause)
		} else {
			c.log.Warn("submission failed", "error", msg.Err)
		}
		c.deps.Renderer.RenderError(msg.Err.Error())
		return nil
	}

	switch {
	case !c.q.Multi:
		c.deps.Renderer.RenderFinal(msg.Value)
		return c.terminate(msg.Value)
	case !final:
		entry := msg.Value.(string)
		c.paths = append(c.paths, entry)
		c.engine = autocomplete.New(
			c.deps.Lister,
			c.engine.WorkingDirectory().AbsolutePath(),
			c.q.DefaultAt(len(c.paths)),
			c.engine.DirectoryOnly(),
		)
		c.deps.Renderer.RenderNewPrompt(entry, c.engine)
		return nil
	default:
		return c.terminate(msg.Value)
	}
}

func (c *Controller) terminate(value any) tea.Cmd {
	c.status = StatusAnswered
	c.deps.Renderer.Kill()
	c.release()
	if c.done == nil {
		return nil
	}
	return c.done(value)
}

func (c *Controller) release() {
	if c.lease != nil {
		c.lease.Release()
	}
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.cancel()
		c.pending = nil
	}
}
