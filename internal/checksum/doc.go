// Package checksum computes the content digest recorded in generated files.
//
// The digest covers every (path, kind, bytes) triple of a flattened tree, so
// any added, removed, renamed or edited file changes it, and reclassifying a
// file between text and binary does too.
package checksum
