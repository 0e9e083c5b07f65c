package mocks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal  string
	SizeVal  int64
	ModeVal  os.FileMode
	IsDirVal bool
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *MockFileInfo) IsDir() bool        { return f.IsDirVal }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileSystem is an in-memory, read-mostly filesystem for completion tests.
// ListDir returns children in map iteration order, so callers that need a
// stable order must sort.
type MockFileSystem struct {
	Mu        sync.RWMutex
	Files     map[string][]byte        // path -> content
	FileInfos map[string]*MockFileInfo // path -> metadata
	Symlinks  map[string]string        // symlink path -> target path
	Errors    map[string]error         // path -> error to return
	OpErrors  map[string]error         // operation -> error to return
	ListCalls int
}

// NewMockFileSystem creates a new mock filesystem containing only the root directory.
func NewMockFileSystem() *MockFileSystem {
	f := &MockFileSystem{
		Files:     make(map[string][]byte),
		FileInfos: make(map[string]*MockFileInfo),
		Symlinks:  make(map[string]string),
		Errors:    make(map[string]error),
		OpErrors:  make(map[string]error),
	}
	f.FileInfos["/"] = &MockFileInfo{NameVal: "/", ModeVal: os.ModeDir | 0o755, IsDirVal: true}
	return f
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for a specific operation.
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile creates a file with content
func (f *MockFileSystem) CreateFile(path string, content []byte, perm os.FileMode) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Files[path] = content
	f.FileInfos[path] = &MockFileInfo{
		NameVal:  filepath.Base(path),
		SizeVal:  int64(len(content)),
		ModeVal:  perm,
		IsDirVal: false,
	}
}

// CreateDir creates a directory and any missing parents
func (f *MockFileSystem) CreateDir(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, ok := f.FileInfos[p]; !ok {
			f.FileInfos[p] = &MockFileInfo{
				NameVal:  filepath.Base(p),
				ModeVal:  os.ModeDir | 0o755,
				IsDirVal: true,
			}
		}
		if p == filepath.Dir(p) {
			return
		}
	}
}

// CreateSymlink creates a symlink
func (f *MockFileSystem) CreateSymlink(symlinkPath, targetPath string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Symlinks[symlinkPath] = targetPath
	f.FileInfos[symlinkPath] = &MockFileInfo{
		NameVal:  filepath.Base(symlinkPath),
		ModeVal:  os.ModeSymlink | 0o777,
		IsDirVal: false,
	}
}

// Remove deletes a single entry, simulating concurrent changes between keystrokes.
func (f *MockFileSystem) Remove(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	delete(f.Files, path)
	delete(f.FileInfos, path)
	delete(f.Symlinks, path)
}

// Stat follows symlinks.
func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	target := path
	for i := 0; i < 10; i++ {
		next, ok := f.Symlinks[target]
		if !ok {
			break
		}
		target = next
	}

	if info, ok := f.FileInfos[target]; ok {
		return info, nil
	}

	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ReadFile"]; ok {
		return nil, err
	}

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	content, ok := f.Files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	return content, nil
}

func (f *MockFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	f.Mu.Lock()
	f.ListCalls++
	f.Mu.Unlock()

	f.Mu.RLock()
	defer f.Mu.RUnlock()

	// Check for operation-level errors
	if err, ok := f.OpErrors["ListDir"]; ok {
		return nil, err
	}

	// Check for path-specific errors
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	// Verify path exists and is a directory
	info, ok := f.FileInfos[path]
	if !ok {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	dirPath := filepath.Clean(path)

	// Collect direct children
	var entries []os.FileInfo
	for entryPath, entryInfo := range f.FileInfos {
		if entryPath == dirPath {
			continue
		}
		if filepath.Dir(entryPath) == dirPath {
			entries = append(entries, entryInfo)
		}
	}

	return entries, nil
}
