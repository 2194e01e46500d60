package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
)

// MemoryFileSystem implements FileSystemProvider on top of an afero MemMapFs.
// It records every path passed to Stat and ReadFile and can be told to fail
// on chosen paths, which makes scanner edge cases testable without touching
// the disk.
type MemoryFileSystem struct {
	fs   afero.Afero
	root string

	mu       sync.Mutex
	accessed []string
	failures map[string]error
}

// NewMemoryFileSystem creates a new in-memory filesystem whose relative paths
// resolve against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		fs:       afero.Afero{Fs: afero.NewMemMapFs()},
		root:     root,
		failures: make(map[string]error),
	}
	if err := mfs.fs.MkdirAll(root, 0o755); err != nil {
		panic(fmt.Sprintf("memory filesystem: create root %s: %v", root, err))
	}
	return mfs
}

// Root returns the directory relative paths resolve against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a text file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(p string, content string) {
	mfs.AddBinaryFile(p, []byte(content))
}

// AddBinaryFile adds a file with raw content, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddBinaryFile(p string, content []byte) {
	abs := mfs.abs(p)
	if err := mfs.fs.MkdirAll(path.Dir(abs), 0o755); err != nil {
		panic(fmt.Sprintf("memory filesystem: create parent of %s: %v", abs, err))
	}
	if err := mfs.fs.WriteFile(abs, content, 0o644); err != nil {
		panic(fmt.Sprintf("memory filesystem: write %s: %v", abs, err))
	}
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(p string) {
	abs := mfs.abs(p)
	if err := mfs.fs.MkdirAll(abs, 0o755); err != nil {
		panic(fmt.Sprintf("memory filesystem: create %s: %v", abs, err))
	}
}

// FailOn makes every later Stat, ReadDir and ReadFile of p return err.
func (mfs *MemoryFileSystem) FailOn(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failures[mfs.abs(p)] = err
}

// Accessed returns the sorted, de-duplicated absolute paths that were passed
// to Stat or ReadFile.
func (mfs *MemoryFileSystem) Accessed() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	seen := make(map[string]bool, len(mfs.accessed))
	out := make([]string, 0, len(mfs.accessed))
	for _, p := range mfs.accessed {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	abs, err := mfs.enter(p, true)
	if err != nil {
		return nil, err
	}
	return mfs.fs.Stat(abs)
}

func (mfs *MemoryFileSystem) ReadDir(p string) ([]DirEntry, error) {
	abs, err := mfs.enter(p, false)
	if err != nil {
		return nil, err
	}
	infos, err := mfs.fs.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	entries := make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	abs, err := mfs.enter(p, true)
	if err != nil {
		return nil, err
	}
	return mfs.fs.ReadFile(abs)
}

func (mfs *MemoryFileSystem) Join(elem ...string) string { return path.Join(elem...) }

func (mfs *MemoryFileSystem) Base(p string) string { return path.Base(filepath.ToSlash(p)) }

func (mfs *MemoryFileSystem) enter(p string, record bool) (string, error) {
	abs := mfs.abs(p)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	if record {
		mfs.accessed = append(mfs.accessed, abs)
	}
	if err, ok := mfs.failures[abs]; ok {
		return "", &fs.PathError{Op: "open", Path: abs, Err: err}
	}
	return abs, nil
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
