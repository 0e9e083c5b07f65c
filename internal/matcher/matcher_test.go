package matcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/pathprompt/internal/pathutil"
	"github.com/Cyclone1070/pathprompt/internal/testing/mocks"
	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeFixture() *mocks.MockFileSystem {
	fs := mocks.NewMockFileSystem()
	fs.CreateDir("/home/u/docs")
	fs.CreateDir("/home/u/downloads")
	fs.CreateFile("/home/u/d.txt", []byte("d"), 0o644)
	fs.CreateFile("/home/u/readme.md", []byte("r"), 0o644)
	fs.CreateDir("/home/u/.config")
	fs.CreateFile("/home/u/Desktop.ini", nil, 0o644)
	return fs
}

func names(paths []pathutil.Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.DisplayPath())
	}
	return out
}

func TestList(t *testing.T) {
	tests := []struct {
		name          string
		prefix        string
		directoryOnly bool
		expected      []string
	}{
		{name: "prefix d lists files and dirs alphabetically", prefix: "d", expected: []string{"d.txt", "docs", "downloads"}},
		{name: "directory only", prefix: "d", directoryOnly: true, expected: []string{"docs", "downloads"}},
		{name: "longer prefix", prefix: "do", expected: []string{"docs", "downloads"}},
		{name: "exact name", prefix: "docs", expected: []string{"docs"}},
		{name: "no match", prefix: "zzz", expected: []string{}},
		{name: "case sensitive", prefix: "D", expected: []string{"Desktop.ini"}},
		{name: "empty prefix lists everything", prefix: "", expected: []string{".config", "Desktop.ini", "d.txt", "docs", "downloads", "readme.md"}},
	}

	m := New(homeFixture(), WithCaseMode(CaseSensitive))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.List("/home/u", tt.prefix, tt.directoryOnly)
			assert.Equal(t, tt.expected, names(got))
		})
	}
}

func TestList_EntriesCarryKindAndWorkingDir(t *testing.T) {
	m := New(homeFixture(), WithCaseMode(CaseSensitive))

	got := m.List("/home/u", "d", false)
	require.Len(t, got, 3)
	assert.False(t, got[0].IsDir())
	assert.True(t, got[1].IsDir())
	assert.Equal(t, "/home/u/docs", got[1].AbsolutePath())
	assert.Equal(t, "/home/u", got[1].WorkingDirectory())
}

func TestList_DeterministicAcrossCalls(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	for _, n := range []string{"m", "c", "x", "a", "q", "b", "z", "k"} {
		fs.CreateFile(filepath.Join("/w", n), nil, 0o644)
	}
	fs.CreateDir("/w")
	m := New(fs)

	first := names(m.List("/w", "", false))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, names(m.List("/w", "", false)))
	}
	assert.Equal(t, []string{"a", "b", "c", "k", "m", "q", "x", "z"}, first)
}

func TestList_ReadsFilesystemEveryCall(t *testing.T) {
	fs := homeFixture()
	m := New(fs, WithCaseMode(CaseSensitive))

	assert.Equal(t, []string{"d.txt", "docs", "downloads"}, names(m.List("/home/u", "d", false)))
	fs.Remove("/home/u/d.txt")
	assert.Equal(t, []string{"docs", "downloads"}, names(m.List("/home/u", "d", false)))
	assert.Equal(t, 2, fs.ListCalls)
}

func TestList_DegradesToEmpty(t *testing.T) {
	fs := homeFixture()
	fs.SetError("/locked", os.ErrPermission)
	m := New(fs)

	assert.Empty(t, m.List("/missing", "", false))
	assert.Empty(t, m.List("/home/u/d.txt", "", false))
	assert.Empty(t, m.List("/locked", "", false))
	assert.NotNil(t, m.List("/missing", "", false))
}

func TestList_SymlinkToDirectoryCountsAsDirectory(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.CreateDir("/w/real")
	fs.CreateSymlink("/w/link", "/w/real")
	fs.CreateSymlink("/w/broken", "/w/nowhere")

	got := New(fs).List("/w", "", true)
	assert.Equal(t, []string{"link", "real"}, names(got))
}

type stubIgnore struct{ ignored map[string]bool }

func (s stubIgnore) ShouldIgnore(absPath string, isDir bool) bool { return s.ignored[absPath] }

func TestList_Options(t *testing.T) {
	t.Run("ignore matcher drops entries", func(t *testing.T) {
		m := New(homeFixture(), WithCaseMode(CaseSensitive), WithIgnore(stubIgnore{ignored: map[string]bool{"/home/u/docs": true}}))
		assert.Equal(t, []string{"d.txt", "downloads"}, names(m.List("/home/u", "d", false)))
	})

	t.Run("exclude globs match entry names", func(t *testing.T) {
		m := New(homeFixture(), WithCaseMode(CaseSensitive), WithExclude(glob.MustCompile("*.txt"), glob.MustCompile("down*")))
		assert.Equal(t, []string{"docs"}, names(m.List("/home/u", "d", false)))
	})

	t.Run("max matches truncates after sorting", func(t *testing.T) {
		m := New(homeFixture(), WithCaseMode(CaseSensitive), WithMaxMatches(2))
		assert.Equal(t, []string{"d.txt", "docs"}, names(m.List("/home/u", "d", false)))
	})

	t.Run("hidden entries can be suppressed unless asked for", func(t *testing.T) {
		m := New(homeFixture(), WithCaseMode(CaseSensitive), WithHidden(false))
		assert.NotContains(t, names(m.List("/home/u", "", false)), ".config")
		assert.Equal(t, []string{".config"}, names(m.List("/home/u", ".", false)))
	})

	t.Run("case insensitive folds prefix", func(t *testing.T) {
		m := New(homeFixture(), WithCaseMode(CaseInsensitive))
		assert.Equal(t, []string{"Desktop.ini", "d.txt", "docs", "downloads"}, names(m.List("/home/u", "D", false)))
	})
}

func TestList_OperationErrorIsSwallowed(t *testing.T) {
	fs := homeFixture()
	fs.SetOperationError("ListDir", errors.New("io failure"))
	assert.Empty(t, New(fs).List("/home/u", "", false))
}

func TestFoldCase(t *testing.T) {
	assert.False(t, foldCase(CaseSensitive))
	assert.True(t, foldCase(CaseInsensitive))
}
