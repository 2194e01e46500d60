package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry from the standard library.
type DirEntry = fs.DirEntry

// FileSystemProvider gives read access to a directory tree.
type FileSystemProvider interface {
	// Stat returns file information for the given path, following symbolic links.
	Stat(path string) (FileInfo, error)

	// ReadDir returns the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]DirEntry, error)

	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// Join joins path elements with the provider's separator.
	Join(elem ...string) string

	// Base returns the last element of path.
	Base(path string) string
}
