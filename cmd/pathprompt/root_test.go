package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/pathprompt/internal/config"
	"github.com/Cyclone1070/pathprompt/internal/fsutil"
	"github.com/Cyclone1070/pathprompt/internal/pathutil"
	"github.com/Cyclone1070/pathprompt/internal/prompt"
	"github.com/Cyclone1070/pathprompt/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS() *fsutil.OSFileSystem { return fsutil.NewOSFileSystem() }

type recordedRun struct {
	questions []prompt.Question
	opts      ui.Options
}

func testDependencies(out *bytes.Buffer, rec *recordedRun, answers prompt.Answers, runErr error) Dependencies {
	return Dependencies{
		FS:         newTestFS(),
		Stdin:      os.Stdin,
		Stdout:     out,
		TTYOut:     os.Stderr,
		IsTerminal: func(uintptr) bool { return true },
		TermSize:   func(int) (int, int, error) { return 100, 40, nil },
		Run: func(_ context.Context, qs []prompt.Question, opts ui.Options) (prompt.Answers, error) {
			rec.questions = qs
			rec.opts = opts
			return answers, runErr
		},
		LoadConfig: func(string) (*config.Config, error) { return config.DefaultConfig(), nil },
	}
}

func execute(t *testing.T, deps Dependencies, args ...string) error {
	t.Helper()
	cmd := newRootCommand(deps)
	// nil args make cobra read os.Args
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommand_PrintsAnswersAsJSON(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	deps := testDependencies(&out, &rec, prompt.Answers{"src": []string{"a", "b"}}, nil)

	err = execute(t, deps, "--name", "src", "--cwd", dir, "--multi", "--default", "a", "--default", "b", "--directory-only")
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{"a", "b"}, got["src"])

	require.Len(t, rec.questions, 1)
	q := rec.questions[0]
	assert.Equal(t, "src", q.Name)
	assert.Equal(t, resolved, q.Cwd)
	assert.True(t, q.Multi)
	assert.True(t, q.DirectoryOnly)
	assert.Equal(t, []string{"a", "b"}, q.Default)
	assert.Equal(t, 100, rec.opts.Width)
	assert.NotNil(t, rec.opts.Config)
	assert.NotNil(t, rec.opts.Logger)
}

func TestRootCommand_UnknownTerminalSizeUsesDefaultWidth(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, prompt.Answers{}, nil)
	deps.TermSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }

	require.NoError(t, execute(t, deps, "--cwd", t.TempDir()))
	assert.Equal(t, 0, rec.opts.Width)
}

func TestRootCommand_RequiresTerminal(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, nil, nil)
	deps.IsTerminal = func(uintptr) bool { return false }

	err := execute(t, deps)
	assert.ErrorIs(t, err, ErrNoTerminal)
	assert.Nil(t, rec.questions)
}

func TestRootCommand_InterruptIsPassedThrough(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, prompt.Answers{}, ui.ErrInterrupted)

	err := execute(t, deps, "--cwd", t.TempDir())
	assert.ErrorIs(t, err, ui.ErrInterrupted)
	assert.Empty(t, out.String())
}

func TestRootCommand_ConfigErrorStops(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, nil, nil)
	deps.LoadConfig = func(string) (*config.Config, error) { return nil, errors.New("bad config") }

	err := execute(t, deps, "--config", "x.json")
	assert.EqualError(t, err, "bad config")
	assert.Nil(t, rec.questions)
}

func TestRootCommand_MissingCwd(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, nil, nil)

	err := execute(t, deps, "--cwd", filepath.Join(t.TempDir(), "missing"))
	var wdErr *pathutil.WorkingDirError
	assert.ErrorAs(t, err, &wdErr)
	assert.Nil(t, rec.questions)
}

func TestRootCommand_UnknownValidator(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, nil, nil)

	err := execute(t, deps, "--cwd", t.TempDir(), "--validate", "readable")
	var unknown *prompt.UnknownBuiltinError
	assert.ErrorAs(t, err, &unknown)
}

func TestRootCommand_QuestionsExcludeSingleFlags(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	deps := testDependencies(&out, &rec, nil, nil)

	err := execute(t, deps, "--questions", "q.yaml", "--name", "x")
	assert.Error(t, err)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	var out bytes.Buffer
	var rec recordedRun
	err := execute(t, testDependencies(&out, &rec, nil, nil), "extra")
	assert.Error(t, err)
}

func TestConfigLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"completion": {"max_matches": 3}}`), 0o644))
	load := configLoader(newTestFS())

	t.Run("explicit file", func(t *testing.T) {
		cfg, err := load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Completion.MaxMatches)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := load(filepath.Join(dir, "missing.json"))
		var loadErr *config.LoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("missing dotfile falls back to defaults", func(t *testing.T) {
		t.Setenv("HOME", dir)
		cfg, err := load("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("disabled discards", func(t *testing.T) {
		logger, closeFn, err := newLogger(false, "")
		require.NoError(t, err)
		defer closeFn()
		assert.False(t, logger.Enabled(context.Background(), 0))
	})

	t.Run("debug writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debug.log")
		logger, closeFn, err := newLogger(true, path)
		require.NoError(t, err)
		logger.Debug("hello", "k", "v")
		closeFn()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=hello")
		assert.Contains(t, string(data), "k=v")
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		_, _, err := newLogger(true, filepath.Join(t.TempDir(), "missing", "debug.log"))
		assert.Error(t, err)
	})
}
