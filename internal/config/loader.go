package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "pathprompt"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// FileSystem is the filesystem access the loader needs. fsutil.OSFileSystem satisfies it.
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader reading through fs.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Path returns ~/.config/pathprompt/config.json, or "" when the home directory is unknown.
func (l *Loader) Path() string {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)
}

// Load reads configuration from ~/.config/pathprompt/config.json
// and merges it with defaults. Dotfile values override defaults.
// Returns default config if the dotfile or home directory doesn't exist.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return DefaultConfig(), nil
	}
	return l.load(path, true)
}

// LoadFile reads configuration from an explicit path. Unlike Load, a missing file is an error.
func (l *Loader) LoadFile(path string) (*Config, error) {
	return l.load(path, false)
}

func (l *Loader) load(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, &LoadError{Path: path, Cause: err}
	}

	// Present keys overwrite defaults (even if zero); missing keys keep them.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
