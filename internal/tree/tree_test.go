package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

func text(s string) *Node { return Leaf(includefolder.Text(s)) }

func TestBranch_DropsEmptyNames(t *testing.T) {
	b := Branch(map[string]*Node{"": text("x"), "a": text("y"), "nil": nil})

	assert.True(t, b.IsBranch())
	assert.Equal(t, []string{"a"}, b.Names())
}

func TestNames_AreSorted(t *testing.T) {
	b := Branch(map[string]*Node{"b": text(""), "a.b": text(""), "a": text(""), "B": text("")})

	assert.Equal(t, []string{"B", "a", "a.b", "b"}, b.Names())
}

func TestEqual(t *testing.T) {
	a := Branch(map[string]*Node{"x": text("1"), "d": Branch(nil)})
	b := Branch(map[string]*Node{"x": text("1"), "d": Branch(nil)})
	c := Branch(map[string]*Node{"x": Leaf(includefolder.Blob("1")), "d": Branch(nil)})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c), "text and blob with the same bytes differ")
	assert.False(t, Equal(a, Branch(map[string]*Node{"x": text("1")})))
	assert.False(t, Equal(text("x"), Branch(nil)))
}

func TestSummarize(t *testing.T) {
	root := Branch(map[string]*Node{
		"a.txt": text("hello"),
		"img":   Branch(map[string]*Node{"logo.png": Leaf(includefolder.Blob{0xff, 0x00})}),
	})

	s := Summarize(root)
	assert.Equal(t, Stats{Files: 2, Branches: 2, TextFiles: 1, BlobFiles: 1, Bytes: 7}, s)
}

func TestLookup(t *testing.T) {
	root := Branch(map[string]*Node{
		"hello": Branch(map[string]*Node{"txt": text("Hello")}),
		"v1.2":  Branch(map[string]*Node{"notes": text("dotted dir")}),
	})

	n, ok := Lookup(root, "hello.txt")
	require.True(t, ok)
	assert.Equal(t, includefolder.Text("Hello"), n.Content())

	n, ok = Lookup(root, "v1.2.notes")
	require.True(t, ok)
	assert.Equal(t, includefolder.Text("dotted dir"), n.Content())

	n, ok = Lookup(root, "")
	require.True(t, ok)
	assert.Same(t, root, n)

	_, ok = Lookup(root, "hello.txt.more")
	assert.False(t, ok)
	_, ok = Lookup(root, "missing")
	assert.False(t, ok)
}
