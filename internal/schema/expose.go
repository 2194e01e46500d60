package schema

import (
	"fmt"

	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Exposure lists the files reachable from one schema type, with paths
// relative to that type's Branch and sorted by path.
type Exposure struct {
	Type  string
	Files []includefolder.File
}

// Expose returns one Exposure per type of s, in schema order.
func Expose(root *tree.Node, s *Schema) ([]Exposure, error) {
	out := make([]Exposure, 0, len(s.Types))
	for _, def := range s.Types {
		n := root
		for _, key := range def.Keys {
			child, ok := n.Child(key)
			if !ok || child.IsLeaf() {
				return nil, fmt.Errorf("%w: %s has no directory at %s",
					includefolder.ErrSchemaMismatch, def.Name, def.Path())
			}
			n = child
		}
		out = append(out, Exposure{Type: def.Name, Files: tree.Files(n)})
	}
	return out, nil
}
