package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown to terminal output.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

// glamourGutter is the left margin glamour adds to every line.
const glamourGutter = 2

// NewGlamourRenderer creates a glamour renderer wrapping at width.
// An empty style picks dark or light from the terminal background.
func NewGlamourRenderer(width int, style string) (MarkdownRenderer, error) {
	wrap := width - glamourGutter
	if wrap < 10 {
		wrap = 10
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RenderMarkdown renders content, falling back to the raw text when rendering fails.
func RenderMarkdown(content string, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(out)
}
