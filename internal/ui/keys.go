package ui

import (
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

// keyFromMsg converts a Bubble Tea key event into the prompt's key representation.
func keyFromMsg(msg tea.KeyMsg) prompt.Key {
	switch msg.Type {
	case tea.KeyRunes:
		return prompt.Key{Name: string(msg.Runes), Meta: msg.Alt, Text: true}
	case tea.KeySpace:
		return prompt.Key{Name: " ", Meta: msg.Alt, Text: true}
	case tea.KeyShiftTab:
		return prompt.Key{Name: "tab", Shift: true, Meta: msg.Alt}
	}

	var k prompt.Key
	name := msg.String()
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			k.Ctrl = true
			name = strings.TrimPrefix(name, "ctrl+")
		case strings.HasPrefix(name, "alt+"):
			k.Meta = true
			name = strings.TrimPrefix(name, "alt+")
		case strings.HasPrefix(name, "shift+"):
			k.Shift = true
			name = strings.TrimPrefix(name, "shift+")
		default:
			k.Name = name
			return k
		}
	}
}
