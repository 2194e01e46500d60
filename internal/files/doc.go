// Package files groups the packages that read the directory being embedded.
//
//   - filesystem: the FileSystemProvider abstraction with OS, in-memory
//     (afero) and fs.FS implementations
//   - scanner: walks a root path into a tree.Node, classifying each file as
//     Text or Blob
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/includefolder/internal/files/filesystem"
//	    "github.com/vvka-141/includefolder/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
//	root, err := s.Scan("./assets")
package files
