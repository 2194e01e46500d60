// Package includefolder holds the stable vocabulary shared by the includefolder
// generator and the Go code it emits.
//
// Generated files import this package for:
//   - Text and Blob: the field types of embedded file contents
//   - FileContent: the sealed union of Text and Blob
//   - File: a (dotted path, content) pair returned by Directory.Files
//   - Data: the conversion from a Text or Blob field into FileContent
//   - Directory: the capability implemented by every generated struct
//
// The generator itself additionally uses the sentinel errors, exit codes,
// GenerationRequest and Logger declared here.
package includefolder
