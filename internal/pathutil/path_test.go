package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolutePath(t *testing.T) {
	tests := []struct {
		name     string
		wd       string
		value    string
		expected string
	}{
		{name: "empty value resolves to working dir", wd: "/home/u", value: "", expected: "/home/u"},
		{name: "relative name", wd: "/home/u", value: "docs", expected: "/home/u/docs"},
		{name: "nested relative", wd: "/home/u", value: "docs/a.txt", expected: "/home/u/docs/a.txt"},
		{name: "trailing separator", wd: "/home/u", value: "docs/", expected: "/home/u/docs"},
		{name: "parent dots", wd: "/home/u", value: "../v", expected: "/home/v"},
		{name: "absolute value ignores working dir", wd: "/home/u", value: "/etc/hosts", expected: "/etc/hosts"},
		{name: "absolute value is cleaned", wd: "/home/u", value: "/etc//ssh/../hosts", expected: "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.wd, tt.value)
			assert.Equal(t, tt.expected, p.AbsolutePath())
			assert.Equal(t, tt.value, p.DisplayPath())
			assert.Equal(t, tt.wd, p.WorkingDirectory())
			assert.False(t, p.IsDir())
		})
	}
}

func TestAbsolutePath_DoesNotTouchFilesystem(t *testing.T) {
	p := New("/definitely/not/here", "nor/this")
	assert.Equal(t, "/definitely/not/here/nor/this", p.AbsolutePath())
	assert.Equal(t, "this", p.Name())
}

func TestNewEntry_KeepsKind(t *testing.T) {
	p := NewEntry("/w", "src", true)
	assert.True(t, p.IsDir())
	assert.Equal(t, "/w/src", p.String())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input  string
		dir    string
		prefix string
	}{
		{input: "", dir: "", prefix: ""},
		{input: "docs", dir: "", prefix: "docs"},
		{input: "src/ma", dir: "src/", prefix: "ma"},
		{input: "/etc/", dir: "/etc/", prefix: ""},
		{input: "/", dir: "/", prefix: ""},
		{input: "a/b/c", dir: "a/b/", prefix: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dir, prefix := Split(tt.input)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.input, Join(dir, prefix))
		})
	}
}

func TestRel(t *testing.T) {
	assert.Equal(t, "docs/a.txt", Rel("/home/u", "/home/u/docs/a.txt"))
	assert.Equal(t, "..", Rel("/home/u", "/home"))
	assert.Equal(t, "/etc", Rel("relative", "/etc"))
}

func TestCanonicaliseDir(t *testing.T) {
	tmp := t.TempDir()
	resolvedTmp, err := filepath.EvalSymlinks(tmp)
	require.NoError(t, err)

	t.Run("existing directory", func(t *testing.T) {
		dir, err := CanonicaliseDir(tmp)
		require.NoError(t, err)
		assert.Equal(t, resolvedTmp, dir)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CanonicaliseDir(filepath.Join(tmp, "missing"))
		var wdErr *WorkingDirError
		require.ErrorAs(t, err, &wdErr)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("file is rejected", func(t *testing.T) {
		file := filepath.Join(tmp, "f.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := CanonicaliseDir(file)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

