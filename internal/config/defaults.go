package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Completion CompletionConfig `json:"completion"`
	UI         UIConfig         `json:"ui"`
}

type CompletionConfig struct {
	MaxMatches       int    `json:"max_matches"`       // Default: 0 (unlimited)
	RespectGitignore bool   `json:"respect_gitignore"` // Default: false
	ShowHidden       bool   `json:"show_hidden"`       // Default: true
	CaseMode         string `json:"case_mode"`         // Default: "auto" (auto|sensitive|insensitive)
	// Exclude holds glob patterns matched against entry names, e.g. "*.pyc" or "node_modules".
	Exclude []string `json:"exclude"` // Default: none
}

type UIConfig struct {
	MaxVisibleMatches int    `json:"max_visible_matches"` // Default: 8
	RenderMarkdown    bool   `json:"render_markdown"`     // Default: false
	Colors            Colors `json:"colors"`
}

// Colors are lipgloss color strings (ANSI numbers or hex).
type Colors struct {
	Prompt string `json:"prompt"` // Default: "63"
	Match  string `json:"match"`  // Default: "212"
	Answer string `json:"answer"` // Default: "42"
	Error  string `json:"error"`  // Default: "196"
	Muted  string `json:"muted"`  // Default: "241"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Completion: CompletionConfig{
			MaxMatches:       0,
			RespectGitignore: false,
			ShowHidden:       true,
			CaseMode:         "auto",
		},
		UI: UIConfig{
			MaxVisibleMatches: 8,
			RenderMarkdown:    false,
			Colors: Colors{
				Prompt: "63",
				Match:  "212",
				Answer: "42",
				Error:  "196",
				Muted:  "241",
			},
		},
	}
}
