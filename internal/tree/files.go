package tree

import (
	"sort"
	"strings"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Files flattens n into one File per reachable Leaf. Paths are the dotted
// chain of names from n; a Leaf root yields a single File with an empty path.
// The result is sorted lexicographically by Path.
func Files(n *Node) []includefolder.File {
	var files []includefolder.File
	collect(n, "", &files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

func collect(n *Node, path string, files *[]includefolder.File) {
	if n.leaf {
		*files = append(*files, includefolder.File{Path: path, Data: n.content})
		return
	}
	for _, name := range n.Names() {
		collect(n.children[name], JoinPath(path, name), files)
	}
}

// Lookup navigates a dotted path from n. Names may themselves contain dots
// (directory names are never split), so every child whose name is a prefix
// of the remaining path is tried.
func Lookup(n *Node, path string) (*Node, bool) {
	if path == "" {
		return n, true
	}
	if n.leaf {
		return nil, false
	}
	for _, name := range n.Names() {
		child := n.children[name]
		if path == name {
			return child, true
		}
		if rest, ok := strings.CutPrefix(path, name+includefolder.PathSeparator); ok {
			if found, ok := Lookup(child, rest); ok {
				return found, true
			}
		}
	}
	return nil, false
}
