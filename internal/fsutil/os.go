package fsutil

import (
	"errors"
	"os"
)

// OSFileSystem implements read-only filesystem operations using the local OS.
type OSFileSystem struct {
	// readDir is swappable so listing races can be simulated in tests.
	readDir func(name string) ([]os.DirEntry, error)
}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{readDir: os.ReadDir}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the whole file at path.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// UserHomeDir returns the current user's home directory.
func (fs *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ListDir lists the contents of a directory.
// Entries that vanish between the directory read and their stat are skipped;
// the listing is a snapshot taken while the user may be editing the tree.
func (fs *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := fs.readDir(path)
	if err != nil {
		return nil, &ListDirError{Path: path, Cause: err}
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, &ListDirError{Path: path, Cause: err}
		}
		infos = append(infos, info)
	}

	return infos, nil
}
