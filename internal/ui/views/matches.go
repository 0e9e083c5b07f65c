package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/ui/models"
)

// RenderMatches renders a window of the current cycle around the active match.
func RenderMatches(s models.State, st Styles) string {
	if len(s.Matches) == 0 || s.MatchIndex < 0 {
		return ""
	}

	start, end := window(len(s.Matches), s.MatchIndex, s.MaxVisible)

	var lines []string
	if start > 0 {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("    ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		if i == s.MatchIndex {
			lines = append(lines, st.Match.Render(fmt.Sprintf("  ▸ %s", s.Matches[i])))
		} else {
			lines = append(lines, fmt.Sprintf("    %s", s.Matches[i]))
		}
	}
	if end < len(s.Matches) {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("    ↓ %d more", len(s.Matches)-end)))
	}
	return strings.Join(lines, "\n")
}

// window returns the half-open range of at most size entries that keeps index visible.
func window(n, index, size int) (int, int) {
	if size <= 0 || size >= n {
		return 0, n
	}
	start := index - size/2
	if start < 0 {
		start = 0
	}
	if start > n-size {
		start = n - size
	}
	return start, start + size
}
