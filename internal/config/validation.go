package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Completion
	if c.Completion.MaxMatches < 0 {
		errs = append(errs, "completion.max_matches must be >= 0")
	}
	switch c.Completion.CaseMode {
	case "auto", "sensitive", "insensitive":
	default:
		errs = append(errs, fmt.Sprintf("completion.case_mode must be one of auto, sensitive, insensitive (got %q)", c.Completion.CaseMode))
	}
	for _, pattern := range c.Completion.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Sprintf("completion.exclude pattern %q is invalid: %v", pattern, err))
		}
	}

	// UI
	if c.UI.MaxVisibleMatches < 1 {
		errs = append(errs, "ui.max_visible_matches must be >= 1")
	}
	colors := []struct{ key, value string }{
		{"ui.colors.prompt", c.UI.Colors.Prompt},
		{"ui.colors.match", c.UI.Colors.Match},
		{"ui.colors.answer", c.UI.Colors.Answer},
		{"ui.colors.error", c.UI.Colors.Error},
		{"ui.colors.muted", c.UI.Colors.Muted},
	}
	for _, col := range colors {
		if col.value == "" {
			errs = append(errs, col.key+" must not be empty")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
