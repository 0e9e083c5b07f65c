package views

import (
	"github.com/Cyclone1070/pathprompt/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles used by every view.
type Styles struct {
	Prompt lipgloss.Style
	Match  lipgloss.Style
	Answer lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds styles from configured colors.
func NewStyles(c config.Colors) Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Prompt)).Bold(true),
		Match:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Match)).Bold(true),
		Answer: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Answer)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)).Faint(true),
	}
}
