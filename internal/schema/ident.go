package schema

import (
	"go/token"

	"github.com/iancoleman/strcase"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// FieldIdent validates name for use as a struct field. Field names are the
// entry names verbatim, so "hello" stays "hello" and "2x" is rejected.
// location is the dotted path of the entry, used in the error.
func FieldIdent(name, location string) (string, error) {
	if name == includefolder.FilesMethod {
		return "", &includefolder.IdentifierError{
			Kind:     includefolder.IdentifierField,
			Name:     name,
			Location: location,
			Reason:   "collides with the " + includefolder.FilesMethod + " method",
		}
	}
	if err := check(includefolder.IdentifierField, name, location); err != nil {
		return "", err
	}
	return name, nil
}

// RootTypeIdent returns the PascalCase type name for a root called name.
func RootTypeIdent(name string) (string, error) {
	ident := strcase.ToCamel(name)
	if err := check(includefolder.IdentifierType, ident, ""); err != nil {
		return "", err
	}
	return ident, nil
}

// TypeIdent returns the type name of the struct reached through key below a
// struct called parent: parent followed by the PascalCase form of key.
func TypeIdent(parent, key, location string) (string, error) {
	ident := parent + strcase.ToCamel(key)
	if err := check(includefolder.IdentifierType, ident, location); err != nil {
		return "", err
	}
	return ident, nil
}

// FuncIdent returns the lowerCamel accessor function name for name.
func FuncIdent(name string) (string, error) {
	ident := strcase.ToLowerCamel(name)
	if err := check(includefolder.IdentifierFunction, ident, ""); err != nil {
		return "", err
	}
	return ident, nil
}

func check(kind includefolder.IdentifierKind, name, location string) error {
	var reason string
	switch {
	case name == "":
		reason = "empty"
	case name == "_":
		reason = "the blank identifier cannot be referenced"
	case token.IsKeyword(name):
		reason = "it is a Go keyword"
	case !token.IsIdentifier(name):
		reason = "must start with a letter or underscore and contain only letters, digits and underscores"
	default:
		return nil
	}
	return &includefolder.IdentifierError{Kind: kind, Name: name, Location: location, Reason: reason}
}
