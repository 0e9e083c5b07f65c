package views

import (
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPrompt renders a path question: the answer once answered, otherwise
// the input line with confirmed entries, the match window and any error.
func RenderPrompt(s models.State, st Styles) string {
	if s.Answered {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			st.Answer.Render("✔ "),
			s.Message,
			" ",
			st.Answer.Render(s.Final),
		)
	}

	sections := []string{st.Prompt.Render("? ") + s.Message}
	for _, c := range s.Confirmed {
		sections = append(sections, st.Answer.Render("  ✔ "+c))
	}
	if s.WorkingDir != "" {
		sections = append(sections, st.Muted.Render("  in "+s.WorkingDir))
	}
	sections = append(sections, s.Input.View())

	if matches := RenderMatches(s, st); matches != "" {
		sections = append(sections, matches)
	}
	if s.Pending {
		sections = append(sections, "  "+s.Spinner.View()+st.Muted.Render(" checking…"))
	}
	if s.Error != "" {
		sections = append(sections, st.Error.Render("  ✖ "+s.Error))
	}
	sections = append(sections, RenderHelp(s, st))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderHelp renders the key hints.
func RenderHelp(s models.State, st Styles) string {
	hints := []string{"tab/shift+tab: cycle", "enter: select/submit"}
	if s.Multi {
		hints = append(hints, "esc: cancel/finish")
	} else {
		hints = append(hints, "esc: cancel")
	}
	return st.Muted.Render("  " + strings.Join(hints, "  "))
}
