// Package schema derives a record-type description and a populated value from
// a normalized tree.Node. It knows nothing about Go syntax beyond identifier
// validity; internal/codegen turns its output into source.
//
// The three entry points consume the same normalized tree independently:
//
//	s, err := schema.Synthesize(root, "assets")
//	v, err := schema.BuildInstance(root, s)
//	x, err := schema.Expose(root, s)
package schema
