package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/vvka-141/includefolder/internal/schema"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

//go:embed templates
var templatesFS embed.FS

const configTemplate = "templates/" + includefolder.ConfigFileName

// ErrConfigExists is returned when the target directory already has a
// project file.
var ErrConfigExists = errors.New("config file already exists")

// Options describe the first target written to a new project file.
type Options struct {
	// Path is the directory to embed, relative to the project directory.
	Path string
	// Name is the root type name. Derived from Path when empty.
	Name string
	// Package is the package clause. Derived from the project directory when empty.
	Package string
}

// Scaffolder writes starter project files.
type Scaffolder struct {
	logger includefolder.Logger
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(logger includefolder.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil - use NullLogger if logging is not needed")
	}
	return &Scaffolder{logger: logger}
}

// CreateConfig writes includefolder.yaml into dir and creates the embedded
// directory when it does not exist yet. It returns the path of the written
// file. An existing project file is never overwritten.
func (s *Scaffolder) CreateConfig(dir string, opts Options) (string, error) {
	opts, err := resolve(dir, opts)
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, includefolder.ConfigFileName)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s: %w", target, ErrConfigExists)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check %s: %w", target, err)
	}

	content, err := templatesFS.ReadFile(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	assets := filepath.Join(dir, opts.Path)
	if _, err := os.Stat(assets); os.IsNotExist(err) {
		s.logger.Verbose("Creating directory: %s", opts.Path)
		if err := os.MkdirAll(assets, 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", assets, err)
		}
	}

	s.logger.Verbose("Creating file: %s", includefolder.ConfigFileName)
	if err := os.WriteFile(target, []byte(processTemplate(string(content), opts)), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", target, err)
	}
	return target, nil
}

// resolve fills derived defaults and validates the identifiers that end up
// in generated code.
func resolve(dir string, opts Options) (Options, error) {
	opts.Path = filepath.ToSlash(filepath.Clean(strings.TrimSpace(opts.Path)))
	if opts.Path == "" || opts.Path == "." {
		return opts, fmt.Errorf("path is required: %w", includefolder.ErrInvalidConfig)
	}
	if filepath.IsAbs(opts.Path) || strings.HasPrefix(opts.Path, "../") {
		return opts, fmt.Errorf("path %q must be inside the project directory: %w", opts.Path, includefolder.ErrInvalidConfig)
	}

	if opts.Name == "" {
		opts.Name = strcase.ToCamel(filepath.Base(opts.Path))
	}
	if _, err := schema.RootTypeIdent(opts.Name); err != nil {
		return opts, err
	}

	if opts.Package == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return opts, fmt.Errorf("failed to resolve %s: %w", dir, err)
		}
		opts.Package = strcase.ToSnake(filepath.Base(abs))
	}
	if !token.IsIdentifier(opts.Package) || opts.Package == "_" {
		return opts, fmt.Errorf("package name %q is not a valid identifier: %w", opts.Package, includefolder.ErrInvalidConfig)
	}
	return opts, nil
}

func processTemplate(content string, opts Options) string {
	r := strings.NewReplacer(
		"{{PACKAGE}}", opts.Package,
		"{{PATH}}", opts.Path,
		"{{NAME}}", opts.Name,
		"{{OUTPUT}}", strcase.ToSnake(opts.Name)+includefolder.GeneratedSuffix,
		"{{FUNC}}", strcase.ToLowerCamel(opts.Name),
	)
	return r.Replace(content)
}
