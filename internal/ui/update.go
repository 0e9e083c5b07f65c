package ui

import (
	"github.com/Cyclone1070/pathprompt/internal/interrupt"
	"github.com/Cyclone1070/pathprompt/internal/prompt"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.bus.Emit()
		}
		return m, m.handleKeyPress(msg)

	case interrupt.InterruptMsg:
		return m, m.bus.Emit()

	case prompt.SubmitResultMsg:
		if m.ctrl == nil {
			return m, nil
		}
		cmd := m.ctrl.HandleResult(msg)
		return m, tea.Batch(cmd, m.syncPending())

	case spinner.TickMsg:
		// ticks lapse once nothing is pending
		if m.screen == nil || !m.screen.state.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.screen.state.Spinner, cmd = m.screen.state.Spinner.Update(msg)
		return m, cmd

	case interrupt.TerminateMsg:
		m.log.Debug("terminated")
		return m.Update(abortMsg{})

	case abortMsg:
		m.log.Debug("aborted by interrupt")
		if m.ctrl != nil {
			m.ctrl.Close()
		}
		m.err = ErrInterrupted
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		if m.screen != nil {
			m.screen.state.Width = msg.Width
		}
		return m, nil
	}

	if m.screen == nil {
		return m, nil
	}
	return m, m.screen.updateInput(msg)
}

// handleKeyPress feeds text keys to the line editor first so the controller
// sees the updated line, then lets the controller act on the key.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl == nil {
		return nil
	}

	k := keyFromMsg(msg)
	if k.Ctrl {
		return nil
	}

	var cmds []tea.Cmd
	if !m.ctrl.Keys().IsBinding(k) {
		cmds = append(cmds, m.screen.updateInput(msg))
	}
	cmds = append(cmds, m.ctrl.HandleKey(k))
	cmds = append(cmds, m.syncPending())

	return tea.Batch(cmds...)
}

// syncPending mirrors the controller's in-flight flag and starts the spinner
// when a submission begins.
func (m *Model) syncPending() tea.Cmd {
	if m.ctrl == nil || m.screen == nil {
		return nil
	}
	was := m.screen.state.Pending
	m.screen.state.Pending = m.ctrl.Pending()
	if m.screen.state.Pending && !was {
		return m.screen.state.Spinner.Tick
	}
	return nil
}
