package gitutil

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/pathprompt/internal/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("no gitignore never ignores", func(t *testing.T) {
		fs := mocks.NewMockFileSystem()
		fs.CreateDir("/project")

		svc, err := NewService("/project", fs)
		require.NoError(t, err)
		assert.False(t, svc.ShouldIgnore("/project/app.log", false))
	})

	t.Run("patterns are applied relative to root", func(t *testing.T) {
		fs := mocks.NewMockFileSystem()
		fs.CreateDir("/project")
		fs.CreateFile("/project/.gitignore", []byte("# comment\n*.log\r\nbuild/\n\n"), 0o644)

		svc, err := NewService("/project", fs)
		require.NoError(t, err)

		assert.True(t, svc.ShouldIgnore("/project/app.log", false))
		assert.True(t, svc.ShouldIgnore("/project/sub/app.log", false))
		assert.True(t, svc.ShouldIgnore("/project/build", true))
		assert.False(t, svc.ShouldIgnore("/project/build", false))
		assert.False(t, svc.ShouldIgnore("/project/main.go", false))
	})

	t.Run("paths outside root are kept", func(t *testing.T) {
		fs := mocks.NewMockFileSystem()
		fs.CreateDir("/project")
		fs.CreateFile("/project/.gitignore", []byte("*.log\n"), 0o644)

		svc, err := NewService("/project", fs)
		require.NoError(t, err)

		assert.False(t, svc.ShouldIgnore("/other/app.log", false))
		assert.False(t, svc.ShouldIgnore("/project", true))
	})

	t.Run("read failure is reported", func(t *testing.T) {
		fs := mocks.NewMockFileSystem()
		fs.CreateFile("/project/.gitignore", []byte("*.log\n"), 0o644)
		fs.SetOperationError("ReadFile", errors.New("permission denied"))

		_, err := NewService("/project", fs)
		var readErr *GitignoreReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, "/project/.gitignore", readErr.Path)
	})
}

func TestNoOpService(t *testing.T) {
	assert.False(t, (&NoOpService{}).ShouldIgnore("/any/thing", true))
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitPath("./a//b"))
	assert.Equal(t, []string{}, splitPath(""))
}
