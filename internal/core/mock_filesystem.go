package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories exist implicitly for every ancestor of a stored file.
type MockFileSystem struct {
	mu     sync.RWMutex
	files  map[string][]byte
	errors map[string]error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:  make(map[string][]byte),
		errors: make(map[string]error),
	}
}

// SetFile stores data at path, replacing any previous content.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// SetError makes every operation on path fail with err.
func (m *MockFileSystem) SetError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[filepath.Clean(path)] = err
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	if data, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.isDir(path) {
		return mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	if !m.isDir(path) {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	children := make(map[string]mockFileInfo)
	for name, data := range m.files {
		rel, ok := childOf(path, name)
		if !ok {
			continue
		}
		first, _, nested := strings.Cut(rel, string(filepath.Separator))
		if nested {
			children[first] = mockFileInfo{name: first, dir: true}
		} else if _, seen := children[first]; !seen {
			children[first] = mockFileInfo{name: first, size: int64(len(data))}
		}
	}

	entries := make([]os.DirEntry, 0, len(children))
	for _, info := range children {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// isDir reports whether any stored file lives below path. Caller holds the lock.
func (m *MockFileSystem) isDir(path string) bool {
	for name := range m.files {
		if _, ok := childOf(path, name); ok {
			return true
		}
	}
	return false
}

// childOf returns name relative to dir when name is strictly below dir.
func childOf(dir, name string) (string, bool) {
	if dir == "." {
		if filepath.IsAbs(name) {
			return "", false
		}
		return name, true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return strings.TrimPrefix(name, prefix), true
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }

// Ensure MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)
