// Package tree models a scanned directory as a recursive Leaf/Branch tree and
// implements the two target-neutral transformations the generator needs:
//
//   - Normalize rewrites dotted file names ("nested.folders.test.txt") into
//     implicit nested branches, merged with real subdirectories.
//   - Files flattens a tree into (dotted path, content) pairs.
//
// Trees are built once per generation run and never mutated afterwards.
package tree
