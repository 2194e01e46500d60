package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/includefolder/internal/files/filesystem"
	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// maxDepth bounds recursion through symlinked directory cycles.
const maxDepth = 128

// Scanner turns a path into a tree of file contents.
// A Scanner is not safe for concurrent Scan calls.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     includefolder.Logger
	skipped    int
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger includefolder.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger includefolder.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// RootName returns the entry name a scanned path is known by: the last
// element of path in the provider's path syntax.
func (s *Scanner) RootName(path string) string { return s.fsProvider.Base(path) }

// Skipped returns the number of entries the last Scan omitted because they
// could not be read.
func (s *Scanner) Skipped() int { return s.skipped }

// Scan reads path into a tree. A regular file yields a Leaf; a directory
// yields a Branch of its non-hidden regular files and subdirectories.
//
// A missing path returns an error wrapping includefolder.ErrPathNotFound;
// any other failure to stat the root wraps includefolder.ErrEntryRead.
// Failures on individual entries below the root are logged and the entry is
// left out; only a failure to list the root directory itself is returned.
func (s *Scanner) Scan(path string) (*tree.Node, error) {
	s.skipped = 0

	info, err := s.fsProvider.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", includefolder.ErrPathNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", includefolder.ErrEntryRead, path, err)
	}

	switch {
	case info.Mode().IsRegular():
		leaf, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		return leaf, nil
	case info.IsDir():
		s.logger.Verbose("Scanning %s", path)
		return s.scanDir(path, 0)
	default:
		return nil, fmt.Errorf("%w: %s is neither a file nor a directory", includefolder.ErrEntryRead, path)
	}
}

func (s *Scanner) scanDir(dir string, depth int) (*tree.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %s: nesting deeper than %d levels", includefolder.ErrEntryRead, dir, maxDepth)
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", includefolder.ErrEntryRead, dir, err)
	}

	children := make(map[string]*tree.Node, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		p := s.fsProvider.Join(dir, name)
		info, err := s.fsProvider.Stat(p)
		if err != nil {
			s.skip(p, err)
			continue
		}

		switch {
		case info.Mode().IsRegular():
			leaf, err := s.readFile(p)
			if err != nil {
				s.skip(p, err)
				continue
			}
			children[name] = leaf
		case info.IsDir():
			sub, err := s.scanDir(p, depth+1)
			if err != nil {
				s.skip(p, err)
				continue
			}
			children[name] = sub
		default:
			s.logger.Verbose("Ignoring %s: not a regular file or directory", p)
		}
	}

	return tree.Branch(children), nil
}

func (s *Scanner) readFile(path string) (*tree.Node, error) {
	raw, err := s.fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", includefolder.ErrEntryRead, path, err)
	}
	return tree.Leaf(Classify(raw)), nil
}

func (s *Scanner) skip(path string, err error) {
	s.skipped++
	s.logger.Error("Skipping %s: %v", path, err)
}

// Classify returns Text when raw is valid UTF-8 and Blob otherwise.
// The bytes are preserved exactly either way.
func Classify(raw []byte) includefolder.FileContent {
	if utf8.Valid(raw) {
		return includefolder.Text(raw)
	}
	return includefolder.Blob(raw)
}
