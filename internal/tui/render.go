package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/dustin/go-humanize"

	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// RenderTree draws n as an indented tree headed by title. Leaves show their
// content kind and size.
func RenderTree(title string, n *tree.Node) string {
	if n.IsLeaf() {
		return leafLabel(title, n.Content())
	}
	return build(ltree.Root(TitleStyle.Render(title)), n).String()
}

func build(t *ltree.Tree, n *tree.Node) *ltree.Tree {
	t.Enumerator(ltree.RoundedEnumerator).EnumeratorStyle(EnumeratorStyle)
	for _, name := range n.Names() {
		child, _ := n.Child(name)
		if child.IsLeaf() {
			t.Child(leafLabel(name, child.Content()))
			continue
		}
		t.Child(build(ltree.Root(BranchStyle.Render(name)), child))
	}
	return t
}

func leafLabel(name string, c includefolder.FileContent) string {
	style := TextLeafStyle
	if c.Kind() == includefolder.KindBlob {
		style = BlobLeafStyle
	}
	return style.Render(name) + " " + DetailStyle.Render(describe(c))
}

func describe(c includefolder.FileContent) string {
	return fmt.Sprintf("%s, %s", c.Kind(), humanize.Bytes(uint64(c.Len())))
}

// RenderFiles lists files one per line with kind and size columns aligned.
func RenderFiles(files []includefolder.File) string {
	width := 0
	for _, f := range files {
		width = max(width, lipgloss.Width(f.Path))
	}

	var b strings.Builder
	for _, f := range files {
		style := TextLeafStyle
		if f.Data.Kind() == includefolder.KindBlob {
			style = BlobLeafStyle
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(f.Path))
		fmt.Fprintf(&b, "%s%s  %s\n", style.Render(f.Path), pad, DetailStyle.Render(describe(f.Data)))
	}
	return b.String()
}

// RenderSummary is the one-line report printed after a generation run.
func RenderSummary(output string, s tree.Stats, skipped int) string {
	line := fmt.Sprintf("%s %s %s (%d files, %d text, %d binary, %s)",
		SuccessStyle.Render(SymbolCheck), SymbolArrowRight, output,
		s.Files, s.TextFiles, s.BlobFiles, humanize.Bytes(uint64(s.Bytes)))
	if skipped > 0 {
		line += " " + WarningStyle.Render(fmt.Sprintf("%d unreadable entries skipped", skipped))
	}
	return line
}
