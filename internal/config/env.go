package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Environment keys read from env files and the process environment.
const (
	EnvPackage   = "INCLUDEFOLDER_PACKAGE"
	EnvTags      = "INCLUDEFOLDER_TAGS"
	EnvOutputDir = "INCLUDEFOLDER_OUTPUT_DIR"

	// EnvGoPackage is set by go generate to the package of the file holding
	// the directive.
	EnvGoPackage = "GOPACKAGE"
)

// DefaultEnvFile is read when no env file is named explicitly and it exists.
const DefaultEnvFile = ".env"

// Defaults are the lowest-precedence settings, filled in after flags and
// config targets.
type Defaults struct {
	Package   string
	Tags      string
	OutputDir string
	GoPackage string
}

// LoadDefaults reads env files with godotenv. Values already present in the
// process environment win over values from files. With no files named,
// DefaultEnvFile is read if present.
func LoadDefaults(files ...string) (Defaults, error) {
	values := map[string]string{}

	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Defaults{}, fmt.Errorf("env file: %w: %v", includefolder.ErrInvalidConfig, err)
			}
			return Defaults{}, fmt.Errorf("env file: %w", err)
		}
		values = read
	}

	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return values[key]
	}

	return Defaults{
		Package:   get(EnvPackage),
		Tags:      get(EnvTags),
		OutputDir: get(EnvOutputDir),
		GoPackage: os.Getenv(EnvGoPackage),
	}, nil
}

// Apply fills the blanks of req. The output defaults to the snake_case root
// name plus GeneratedSuffix, placed in OutputDir when set. The package falls
// back to Package, then GoPackage, then the name of the output directory.
func (d Defaults) Apply(req includefolder.GenerationRequest) includefolder.GenerationRequest {
	if req.Tags == "" {
		req.Tags = d.Tags
	}
	if req.Output == "" && req.Name != "" {
		req.Output = strcase.ToSnake(req.Name) + includefolder.GeneratedSuffix
		if d.OutputDir != "" {
			req.Output = filepath.Join(d.OutputDir, req.Output)
		}
	}
	if req.Package == "" {
		req.Package = firstNonEmpty(d.Package, d.GoPackage, packageFromDir(req.Output))
	}
	return req
}

func packageFromDir(output string) string {
	dir := filepath.Dir(output)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	return strcase.ToSnake(filepath.Base(abs))
}
