package tree

import (
	"strings"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Conflict describes an entry that dotted-name merging overwrote.
type Conflict struct {
	// Path is the dotted location of the overwritten entry in the normalized tree.
	Path string
	// Source is the original name of the entry whose merge caused the overwrite.
	Source string
	// Discarded is the node that was replaced. Its content is lost.
	Discarded *Node
}

// Normalizer rewrites dotted file names into nested branches.
type Normalizer struct {
	// OnConflict, when set, is called for every overwritten entry. Conflicts
	// never fail normalization.
	OnConflict func(Conflict)
}

// Normalize applies dotted-name normalization with no conflict reporting.
func Normalize(n *Node) *Node {
	return (&Normalizer{}).Normalize(n)
}

// SplitName splits a file name on '.' and drops empty segments, so leading,
// trailing and doubled dots disappear. A name made only of dots yields nil.
func SplitName(name string) []string {
	var segs []string
	for _, s := range strings.Split(name, includefolder.PathSeparator) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// JoinPath extends a dotted path by one name. The empty root path gets no
// leading separator.
func JoinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + includefolder.PathSeparator + name
}

// Normalize returns a new tree in which, at every Branch, each Leaf named
// "a.b.c" is moved to a/b/c, merged into any sibling branch called "a".
// Branch children keep their original, unsplit names: directory names are
// never split.
//
// Children are processed in lexicographic order of their original names.
// When an intermediate segment lands on an existing Leaf, that Leaf is
// replaced by an empty Branch and its content is discarded; when the final
// segment lands on an existing entry, the new Leaf replaces it. Both cases
// are reported to OnConflict.
func (nz *Normalizer) Normalize(n *Node) *Node {
	return nz.normalize(n, "")
}

func (nz *Normalizer) normalize(n *Node, prefix string) *Node {
	if n.leaf {
		return n
	}

	out := make(map[string]*Node, len(n.children))
	for _, name := range n.Names() {
		child := n.children[name]

		if child.leaf {
			segs := SplitName(name)
			if len(segs) == 0 {
				nz.insert(out, name, Leaf(child.content), prefix, name)
				continue
			}
			nz.merge(out, segs, child.content, prefix, name)
			continue
		}

		nz.insert(out, name, nz.normalize(child, JoinPath(prefix, name)), prefix, name)
	}

	return &Node{children: out}
}

// merge walks segs below target, creating branches for all but the last
// segment, and stores content under the last one.
func (nz *Normalizer) merge(target map[string]*Node, segs []string, content includefolder.FileContent, prefix, source string) {
	for _, seg := range segs[:len(segs)-1] {
		next, ok := target[seg]
		if !ok || next.leaf {
			if ok {
				nz.report(JoinPath(prefix, seg), source, next)
			}
			next = &Node{children: make(map[string]*Node)}
			target[seg] = next
		}
		prefix = JoinPath(prefix, seg)
		target = next.children
	}

	nz.insert(target, segs[len(segs)-1], Leaf(content), prefix, source)
}

func (nz *Normalizer) insert(target map[string]*Node, name string, node *Node, prefix, source string) {
	if prev, ok := target[name]; ok {
		nz.report(JoinPath(prefix, name), source, prev)
	}
	target[name] = node
}

func (nz *Normalizer) report(path, source string, discarded *Node) {
	if nz.OnConflict == nil {
		return
	}
	nz.OnConflict(Conflict{Path: path, Source: source, Discarded: discarded})
}
