package schema

import (
	"fmt"

	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// FieldKind is the shape of a struct field.
type FieldKind int

const (
	FieldStruct FieldKind = iota
	FieldText
	FieldBlob
)

func (k FieldKind) String() string {
	switch k {
	case FieldStruct:
		return "struct"
	case FieldText:
		return "text"
	case FieldBlob:
		return "blob"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is one member of a TypeDef.
type Field struct {
	Name string
	Kind FieldKind
	// Type is the nested type name for FieldStruct, empty otherwise.
	Type string
	// Ref is the position of the nested TypeDef in Schema.Types for
	// FieldStruct. Type names may collide; Ref never does.
	Ref int
}

// TypeDef describes the struct synthesized for one Branch.
type TypeDef struct {
	Name string
	// Keys is the chain of names from the root to this Branch; empty for the root.
	Keys   []string
	Fields []Field
}

// Path returns Keys joined with the path separator.
func (t TypeDef) Path() string {
	var p string
	for _, k := range t.Keys {
		p = tree.JoinPath(p, k)
	}
	return p
}

// Schema is the ordered set of struct types for one tree. Types are in
// pre-order: a parent always precedes its children.
type Schema struct {
	Root  string
	Types []TypeDef

	index map[string]int
}

// Type returns the definition called name. When two subtrees derive the same
// name, the later definition wins; follow Field.Ref to reach a specific one.
func (s *Schema) Type(name string) (TypeDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return TypeDef{}, false
	}
	return s.Types[i], true
}

// Synthesize derives one struct type per Branch of root. The root type is the
// PascalCase form of rootName; a Branch reached through key K below type P is
// named P + PascalCase(K). Field names are the entry names verbatim and must
// be valid identifiers.
//
// root must be a normalized Branch; a Leaf root returns ErrNotDirectory.
// Two subtrees deriving the same type name are not detected.
func Synthesize(root *tree.Node, rootName string) (*Schema, error) {
	if root.IsLeaf() {
		return nil, fmt.Errorf("synthesize %q: %w", rootName, includefolder.ErrNotDirectory)
	}

	name, err := RootTypeIdent(rootName)
	if err != nil {
		return nil, err
	}

	s := &Schema{Root: name, index: make(map[string]int)}
	if err := s.add(root, name, nil); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) add(n *tree.Node, name string, keys []string) error {
	def := TypeDef{Name: name, Keys: keys}
	s.index[name] = len(s.Types)
	s.Types = append(s.Types, def)
	slot := len(s.Types) - 1

	type pending struct {
		node  *tree.Node
		name  string
		keys  []string
		field int
	}
	var nested []pending

	fields := make([]Field, 0, n.Len())
	for _, key := range n.Names() {
		child, _ := n.Child(key)
		childKeys := append(append([]string(nil), keys...), key)
		location := TypeDef{Keys: childKeys}.Path()

		field, err := FieldIdent(key, location)
		if err != nil {
			return err
		}

		if child.IsLeaf() {
			kind := FieldText
			if child.Content().Kind() == includefolder.KindBlob {
				kind = FieldBlob
			}
			fields = append(fields, Field{Name: field, Kind: kind})
			continue
		}

		typ, err := TypeIdent(name, key, location)
		if err != nil {
			return err
		}
		fields = append(fields, Field{Name: field, Kind: FieldStruct, Type: typ})
		nested = append(nested, pending{node: child, name: typ, keys: childKeys, field: len(fields) - 1})
	}
	s.Types[slot].Fields = fields

	for _, p := range nested {
		s.Types[slot].Fields[p.field].Ref = len(s.Types)
		if err := s.add(p.node, p.name, p.keys); err != nil {
			return err
		}
	}
	return nil
}
