// Package scanner reads a file or directory into a tree.Node.
//
// The scanner is responsible for:
//   - Skipping hidden entries (names starting with '.') without touching them
//   - Classifying file bytes as Text (valid UTF-8) or Blob
//   - Recovering from per-entry failures by logging and omitting the entry
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
