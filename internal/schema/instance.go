package schema

import (
	"fmt"

	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Value is a populated instance of a schema type.
type Value struct {
	Type   string
	Fields []FieldValue
}

// FieldValue is one populated field. Exactly one of Struct and Content is set.
type FieldValue struct {
	Name    string
	Struct  *Value
	Content includefolder.FileContent
}

// BuildInstance walks root in the same order Synthesize does and fills in the
// leaf contents unchanged. Every level is checked against s; any disagreement
// returns an error wrapping ErrSchemaMismatch.
func BuildInstance(root *tree.Node, s *Schema) (*Value, error) {
	if root.IsLeaf() {
		return nil, fmt.Errorf("build instance: %w", includefolder.ErrNotDirectory)
	}
	return build(root, s, 0)
}

func build(n *tree.Node, s *Schema, ref int) (*Value, error) {
	if ref < 0 || ref >= len(s.Types) {
		return nil, fmt.Errorf("%w: no type at position %d", includefolder.ErrSchemaMismatch, ref)
	}
	def := s.Types[ref]
	typeName := def.Name

	names := n.Names()
	if len(names) != len(def.Fields) {
		return nil, fmt.Errorf("%w: %s has %d fields, tree has %d entries",
			includefolder.ErrSchemaMismatch, typeName, len(def.Fields), len(names))
	}

	v := &Value{Type: typeName, Fields: make([]FieldValue, 0, len(names))}
	for i, key := range names {
		field := def.Fields[i]
		if field.Name != key {
			return nil, fmt.Errorf("%w: %s field %d is %s, tree entry is %s",
				includefolder.ErrSchemaMismatch, typeName, i, field.Name, key)
		}

		child, _ := n.Child(key)
		if child.IsLeaf() {
			if want := kindOf(child.Content()); field.Kind != want {
				return nil, fmt.Errorf("%w: %s.%s is %s, content is %s",
					includefolder.ErrSchemaMismatch, typeName, key, field.Kind, want)
			}
			v.Fields = append(v.Fields, FieldValue{Name: key, Content: child.Content()})
			continue
		}

		if field.Kind != FieldStruct {
			return nil, fmt.Errorf("%w: %s.%s is %s, tree entry is a directory",
				includefolder.ErrSchemaMismatch, typeName, key, field.Kind)
		}
		nested, err := build(child, s, field.Ref)
		if err != nil {
			return nil, err
		}
		v.Fields = append(v.Fields, FieldValue{Name: key, Struct: nested})
	}
	return v, nil
}

func kindOf(c includefolder.FileContent) FieldKind {
	if c.Kind() == includefolder.KindBlob {
		return FieldBlob
	}
	return FieldText
}
