package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Key is a single keypress: its name plus modifier flags.
// Text marks typed or pasted characters; Name then holds the characters and
// the key never matches a binding, even when it spells one.
type Key struct {
	Name  string
	Ctrl  bool
	Meta  bool
	Shift bool
	Text  bool
}

// String renders the key the way bubbles bindings name keys, e.g. "shift+tab".
func (k Key) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Meta {
		b.WriteString("alt+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(k.Name)
	return b.String()
}

// KeyMap holds the prompt's fixed bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next match")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous match")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/submit")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/finish")),
	}
}

// IsBinding reports whether k is handled by the prompt rather than typed into the line.
func (km KeyMap) IsBinding(k Key) bool {
	return !k.Text && key.Matches(k, km.Next, km.Prev, km.Confirm, km.Cancel)
}

// ShortHelp lists the bindings for a help line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Confirm, km.Cancel}
}
