// Package filesystem provides the read-only filesystem abstraction used by the
// scanner.
//
// Key interface:
//   - FileSystemProvider: Stat, ReadDir and ReadFile over slash- or
//     OS-separated paths, plus the matching Join and Base helpers
//
// Implementations:
//   - OSFileSystem: production implementation using the os package
//   - MemoryFileSystem: afero MemMapFs backed, with read recording and
//     failure injection for tests
package filesystem
