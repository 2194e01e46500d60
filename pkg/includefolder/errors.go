package includefolder

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := svc.Generate(req)
//	if errors.Is(err, includefolder.ErrPathNotFound) {
//	    // Handle a missing asset directory
//	}
var (
	// ErrPathNotFound indicates the path to embed does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrEntryRead indicates a single directory entry could not be read.
	// Scanners recover from it locally: the entry is logged and omitted.
	ErrEntryRead = errors.New("entry read failed")

	// ErrInvalidIdentifier indicates a derived field or type name is not a
	// usable Go identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotDirectory indicates a schema was requested for a tree whose root
	// is a single file.
	ErrNotDirectory = errors.New("root is not a directory")

	// ErrSchemaMismatch indicates an instance does not line up with its schema.
	ErrSchemaMismatch = errors.New("instance does not match schema")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStaleOutput indicates a generated file differs from what the current
	// directory contents would produce.
	ErrStaleOutput = errors.New("generated output is stale")
)

// IdentifierKind tells which derived name failed validation.
type IdentifierKind string

const (
	IdentifierField    IdentifierKind = "field"
	IdentifierType     IdentifierKind = "type"
	IdentifierFunction IdentifierKind = "function"
)

// IdentifierError reports a name that cannot be used as a Go identifier.
type IdentifierError struct {
	Kind IdentifierKind
	// Name is the offending name exactly as derived.
	Name string
	// Location is the dotted path of the entry the name came from; empty for
	// root-level names.
	Location string
	Reason   string
}

func (e *IdentifierError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s name %q", e.Kind, e.Name)
	if e.Location != "" {
		fmt.Fprintf(&b, " (at %s)", e.Location)
	}
	fmt.Fprintf(&b, " is not a valid identifier: %s", e.Reason)
	return b.String()
}

// Unwrap makes errors.Is(err, ErrInvalidIdentifier) hold.
func (e *IdentifierError) Unwrap() error {
	return ErrInvalidIdentifier
}

// usageErrorPrefixes are message prefixes produced by cobra/pflag for
// command line misuse.
var usageErrorPrefixes = []string{
	"missing required argument",
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrInvalidIdentifier):
		return ExitConfigError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrStaleOutput):
		return ExitStaleOutput
	case errors.Is(err, ErrSchemaMismatch):
		return ExitPanic
	}

	msg := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
