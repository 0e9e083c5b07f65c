package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// State is everything the views need to draw one path question.
type State struct {
	Message    string
	Input      textinput.Model
	WorkingDir string
	Multi      bool

	// Matches is the current cycle, directories suffixed with a separator.
	Matches    []string
	MatchIndex int
	MaxVisible int

	Confirmed []string
	Pending   bool
	Spinner   spinner.Model
	Error     string

	Answered bool
	Final    string
	Width    int
}
