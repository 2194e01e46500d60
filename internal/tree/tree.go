package tree

import (
	"sort"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Node is either a Leaf holding file content or a Branch mapping names to
// child nodes. A Branch exclusively owns its children.
type Node struct {
	leaf     bool
	content  includefolder.FileContent
	children map[string]*Node
}

// Leaf returns a node holding content.
func Leaf(content includefolder.FileContent) *Node {
	return &Node{leaf: true, content: content}
}

// Branch returns a node owning children. A nil map yields an empty branch.
// Empty names are dropped.
func Branch(children map[string]*Node) *Node {
	owned := make(map[string]*Node, len(children))
	for name, child := range children {
		if name == "" || child == nil {
			continue
		}
		owned[name] = child
	}
	return &Node{children: owned}
}

// IsLeaf reports whether n holds file content.
func (n *Node) IsLeaf() bool { return n.leaf }

// IsBranch reports whether n holds named children.
func (n *Node) IsBranch() bool { return !n.leaf }

// Content returns the file content of a Leaf, or nil for a Branch.
func (n *Node) Content() includefolder.FileContent { return n.content }

// Len returns the number of direct children of a Branch.
func (n *Node) Len() int { return len(n.children) }

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Names returns the names of the direct children in byte-wise lexicographic
// order. Every traversal in this module iterates children in this order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether a and b have the same shape and content.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.leaf != b.leaf {
		return false
	}
	if a.leaf {
		return includefolder.Equal(a.content, b.content)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for name, ac := range a.children {
		bc, ok := b.children[name]
		if !ok || !Equal(ac, bc) {
			return false
		}
	}
	return true
}

// Stats summarises a tree.
type Stats struct {
	Files     int
	Branches  int
	TextFiles int
	BlobFiles int
	Bytes     int64
}

// Summarize counts the leaves and branches below n, n included.
func Summarize(n *Node) Stats {
	var s Stats
	summarize(n, &s)
	return s
}

func summarize(n *Node, s *Stats) {
	if n.leaf {
		s.Files++
		if n.content != nil {
			s.Bytes += int64(n.content.Len())
			switch n.content.Kind() {
			case includefolder.KindText:
				s.TextFiles++
			case includefolder.KindBlob:
				s.BlobFiles++
			}
		}
		return
	}
	s.Branches++
	for _, child := range n.children {
		summarize(child, s)
	}
}
