package includefolder

import (
	"errors"
	"fmt"
	"strings"
)

// GenerationRequest describes one directory to embed.
type GenerationRequest struct {
	// Path is the file or directory to embed. It must exist at generation time.
	Path string

	// Name is the desired root type name. Its PascalCase form names the root
	// struct; its lowerCamel form names the accessor function.
	Name string

	// Package is the package clause of the generated file.
	Package string

	// Func overrides the accessor function name derived from Name.
	Func string

	// Tags is an optional //go:build constraint expression.
	Tags string

	// Output is where the generated file is written. Empty means the caller
	// decides (e.g. stdout).
	Output string
}

// Validate checks that the required fields are present.
// It returns a multi-error if multiple validation failures occur.
func (r *GenerationRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Path) == "" {
		errs = append(errs, fmt.Errorf("path is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(r.Package) == "" {
		errs = append(errs, fmt.Errorf("package is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
