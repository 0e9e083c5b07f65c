package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Cyclone1070/pathprompt/internal/config"
	"github.com/Cyclone1070/pathprompt/internal/fsutil"
	"github.com/Cyclone1070/pathprompt/internal/pathutil"
	"github.com/Cyclone1070/pathprompt/internal/prompt"
	"github.com/Cyclone1070/pathprompt/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("pathprompt needs an interactive terminal")

// Dependencies holds the components required to run the application.
type Dependencies struct {
	FS         *fsutil.OSFileSystem
	Stdin      *os.File
	Stdout     io.Writer
	TTYOut     *os.File
	IsTerminal func(fd uintptr) bool
	TermSize   func(fd int) (width, height int, err error)
	Run        func(ctx context.Context, questions []prompt.Question, opts ui.Options) (prompt.Answers, error)
	LoadConfig func(path string) (*config.Config, error)
}

func defaultDependencies() Dependencies {
	fs := fsutil.NewOSFileSystem()
	return Dependencies{
		FS:         fs,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		TTYOut:     os.Stderr,
		IsTerminal: isatty.IsTerminal,
		TermSize:   term.GetSize,
		Run:        ui.Run,
		LoadConfig: configLoader(fs),
	}
}

type flags struct {
	name          string
	message       string
	cwd           string
	defaults      []string
	multi         bool
	directoryOnly bool
	validate      []string
	filter        string
	questions     string
	configPath    string
	debug         bool
	logFile       string
	markdownStyle string
}

// newRootCommand creates the pathprompt command.
func newRootCommand(deps Dependencies) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "pathprompt",
		Short: "Ask for filesystem paths with tab completion",
		Long: `pathprompt asks one or more path questions in the terminal and prints
the answers as JSON on stdout.

Tab and shift+tab cycle through matching entries, enter selects a match or
submits, esc cancels cycling or finishes a multi-path question.

Questions come from flags, or from a YAML/JSON list given with --questions.`,
		Version:      Version,
		SilenceUsage: true,
		// main reports errors; an interrupt exits quietly
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), deps, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "path", "answer key")
	fl.StringVar(&f.message, "message", "Path", "question text (markdown when ui.render_markdown is set)")
	fl.StringVar(&f.cwd, "cwd", "", "directory relative input resolves against (default: current directory)")
	fl.StringArrayVar(&f.defaults, "default", nil, "initial value; repeat for successive entries with --multi")
	fl.BoolVar(&f.multi, "multi", false, "collect several paths")
	fl.BoolVar(&f.directoryOnly, "directory-only", false, "complete directories only")
	fl.StringArrayVar(&f.validate, "validate", nil, "built-in validator: exists, not_exists, within_cwd, directory, file (repeatable)")
	fl.StringVar(&f.filter, "filter", "", "built-in filter: relative, slash, base")
	fl.StringVar(&f.questions, "questions", "", "YAML or JSON file with a list of questions")
	fl.StringVar(&f.configPath, "config", "", "config file (default ~/.config/pathprompt/config.json)")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fl.StringVar(&f.logFile, "log-file", "pathprompt.log", "debug log destination")
	fl.StringVar(&f.markdownStyle, "markdown-style", "", "glamour style for markdown messages (default: detect)")
	cmd.MarkFlagsMutuallyExclusive("questions", "name")
	cmd.MarkFlagsMutuallyExclusive("questions", "multi")

	return cmd
}

func run(ctx context.Context, deps Dependencies, f flags) error {
	if !deps.IsTerminal(deps.Stdin.Fd()) || !deps.IsTerminal(deps.TTYOut.Fd()) {
		return ErrNoTerminal
	}

	logger, closeLog, err := newLogger(f.debug, f.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := deps.LoadConfig(f.configPath)
	if err != nil {
		return err
	}

	questions, err := buildQuestions(deps.FS, f)
	if err != nil {
		return err
	}
	logger.Debug("starting", "questions", len(questions))

	// zero width lets the UI pick its default
	width, _, err := deps.TermSize(int(deps.TTYOut.Fd()))
	if err != nil {
		logger.Debug("terminal size unavailable", "error", err)
		width = 0
	}

	answers, err := deps.Run(ctx, questions, ui.Options{
		Config:        cfg,
		FS:            deps.FS,
		Logger:        logger,
		Input:         deps.Stdin,
		Output:        deps.TTYOut,
		Width:         width,
		MarkdownStyle: f.markdownStyle,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(answers)
}

func buildQuestions(fs *fsutil.OSFileSystem, f flags) ([]prompt.Question, error) {
	var specs []QuestionSpec
	if f.questions != "" {
		data, err := fs.ReadFile(f.questions)
		if err != nil {
			return nil, fmt.Errorf("failed to read questions: %w", err)
		}
		if specs, err = parseQuestions(data); err != nil {
			return nil, err
		}
	} else {
		specs = []QuestionSpec{{
			Name:          f.name,
			Message:       f.message,
			Cwd:           f.cwd,
			Default:       f.defaults,
			Multi:         f.multi,
			DirectoryOnly: f.directoryOnly,
			Validate:      f.validate,
			Filter:        f.filter,
		}}
	}

	questions := make([]prompt.Question, 0, len(specs))
	for _, s := range specs {
		// a bad cwd fails here instead of showing an empty completion list
		if s.Cwd != "" {
			cwd, err := pathutil.CanonicaliseDir(s.Cwd)
			if err != nil {
				return nil, fmt.Errorf("question %q: %w", s.Name, err)
			}
			s.Cwd = cwd
		}
		q, err := s.toQuestion(fs)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// configLoader reads the --config file when given, else the optional dotfile.
func configLoader(fs config.FileSystem) func(path string) (*config.Config, error) {
	loader := config.NewLoader(fs)
	return func(path string) (*config.Config, error) {
		if path != "" {
			return loader.LoadFile(path)
		}
		return loader.Load()
	}
}

// newLogger writes debug logs to a file since the terminal belongs to the prompt.
func newLogger(debug bool, path string) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
