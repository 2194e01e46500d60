package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Target is one directory to embed.
type Target struct {
	Path    string `yaml:"path"`
	Name    string `yaml:"name"`
	Output  string `yaml:"output,omitempty"`
	Package string `yaml:"package,omitempty"`
	Func    string `yaml:"func,omitempty"`
	Tags    string `yaml:"tags,omitempty"`
}

// ProjectConfig is the content of includefolder.yaml. Package and Tags are
// defaults for targets that do not set their own.
type ProjectConfig struct {
	Package string   `yaml:"package,omitempty"`
	Tags    string   `yaml:"tags,omitempty"`
	Targets []Target `yaml:"targets"`

	// dir is the directory the file was loaded from. Relative target paths
	// resolve against it.
	dir string
}

// Load reads includefolder.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, includefolder.ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, includefolder.ErrInvalidConfig, err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Dir returns the directory the config was loaded from.
func (c *ProjectConfig) Dir() string { return c.dir }

// Validate checks that every target names a path and a root name.
func (c *ProjectConfig) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets defined: %w", includefolder.ErrInvalidConfig)
	}

	var errs []error
	for i, t := range c.Targets {
		if strings.TrimSpace(t.Path) == "" {
			errs = append(errs, fmt.Errorf("target %d: path is required: %w", i, includefolder.ErrInvalidConfig))
		}
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("target %d: name is required: %w", i, includefolder.ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}

// Requests turns every target into a generation request, resolving relative
// paths against the config directory and filling the package and tags from
// the file-level defaults. Remaining blanks are left for Defaults.Apply.
func (c *ProjectConfig) Requests() []includefolder.GenerationRequest {
	reqs := make([]includefolder.GenerationRequest, 0, len(c.Targets))
	for _, t := range c.Targets {
		req := includefolder.GenerationRequest{
			Path:    c.resolve(t.Path),
			Name:    t.Name,
			Package: firstNonEmpty(t.Package, c.Package),
			Func:    t.Func,
			Tags:    firstNonEmpty(t.Tags, c.Tags),
		}
		if t.Output != "" {
			req.Output = c.resolve(t.Output)
		}
		reqs = append(reqs, req)
	}
	return reqs
}

func (c *ProjectConfig) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
