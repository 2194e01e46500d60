package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vvka-141/includefolder/internal/checksum"
	"github.com/vvka-141/includefolder/internal/codegen"
	"github.com/vvka-141/includefolder/internal/schema"
	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Scanner reads a path into a raw tree.
type Scanner interface {
	Scan(path string) (*tree.Node, error)
	RootName(path string) string
	Skipped() int
}

// SourceGenerator renders the three views of a tree as source code.
type SourceGenerator interface {
	Generate(opts codegen.Options, in codegen.Input) ([]byte, error)
}

// Result is everything one generation run produced.
type Result struct {
	Request includefolder.GenerationRequest
	Source  []byte
	Tree    *tree.Node
	Schema  *schema.Schema
	Files   []includefolder.File
	Digest  string
	Stats   tree.Stats
	// Skipped counts entries the scanner could not read.
	Skipped int
	// Conflicts lists entries lost to dotted-name merging.
	Conflicts []tree.Conflict
}

// GenerationService implements the generate and check workflows.
// Thread-Safety: NOT safe for concurrent calls on the same instance, because
// the scanner keeps per-scan state. Create separate instances instead.
type GenerationService struct {
	scanner    Scanner
	generator  SourceGenerator
	calculator checksum.Calculator
	logger     includefolder.Logger
}

// NewGenerationService creates a GenerationService with all dependencies
// injected. Panics on nil dependencies.
func NewGenerationService(
	scanner Scanner,
	generator SourceGenerator,
	calculator checksum.Calculator,
	logger includefolder.Logger,
) *GenerationService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GenerationService{
		scanner:    scanner,
		generator:  generator,
		calculator: calculator,
		logger:     logger,
	}
}

// Load scans and normalizes path. A single file is wrapped into a
// one-entry directory named after the file, so "hello.txt" embeds as
// root.hello.txt.
func (s *GenerationService) Load(path string) (*tree.Node, []tree.Conflict, error) {
	raw, err := s.scanner.Scan(path)
	if err != nil {
		return nil, nil, err
	}
	if raw.IsLeaf() {
		name := s.scanner.RootName(path)
		s.logger.Verbose("%s is a file, embedding it as %s", path, name)
		raw = tree.Branch(map[string]*tree.Node{name: raw})
	}

	var conflicts []tree.Conflict
	nz := &tree.Normalizer{OnConflict: func(c tree.Conflict) {
		conflicts = append(conflicts, c)
		s.logger.Verbose("merge conflict: %s from %s overwrote an existing entry at %s", c.Source, path, c.Path)
	}}
	return nz.Normalize(raw), conflicts, nil
}

// Generate runs the whole pipeline in memory. Nothing is written.
func (s *GenerationService) Generate(req includefolder.GenerationRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root, conflicts, err := s.Load(req.Path)
	if err != nil {
		return nil, err
	}

	sch, err := schema.Synthesize(root, req.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Path, err)
	}
	value, err := schema.BuildInstance(root, sch)
	if err != nil {
		return nil, err
	}
	exposures, err := schema.Expose(root, sch)
	if err != nil {
		return nil, err
	}

	funcName := req.Func
	if funcName == "" {
		if funcName, err = schema.FuncIdent(req.Name); err != nil {
			return nil, err
		}
	}

	files := tree.Files(root)
	digest := checksum.Algorithm + ":" + s.calculator.CalculateFiles(files)

	src, err := s.generator.Generate(codegen.Options{
		Package: req.Package,
		Func:    funcName,
		Tags:    req.Tags,
		Source:  displayPath(req.Path, req.Output),
		Digest:  digest,
	}, codegen.Input{Schema: sch, Value: value, Exposures: exposures})
	if err != nil {
		return nil, err
	}

	s.logger.Verbose("Generated %d types for %d files from %s", len(sch.Types), len(files), req.Path)

	return &Result{
		Request:   req,
		Source:    src,
		Tree:      root,
		Schema:    sch,
		Files:     files,
		Digest:    digest,
		Stats:     tree.Summarize(root),
		Skipped:   s.scanner.Skipped(),
		Conflicts: conflicts,
	}, nil
}

// Write generates req and writes the result to req.Output. An output file
// that already holds identical bytes is left untouched.
func (s *GenerationService) Write(req includefolder.GenerationRequest) (*Result, error) {
	if req.Output == "" {
		return nil, fmt.Errorf("output path is required: %w", includefolder.ErrInvalidConfig)
	}

	res, err := s.Generate(req)
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(req.Output)
	if err == nil && bytes.Equal(existing, res.Source) {
		s.logger.Verbose("%s is up to date", req.Output)
		return res, nil
	}

	if dir := filepath.Dir(req.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(req.Output, res.Source, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", req.Output, err)
	}
	s.logger.Verbose("Wrote %s (%d bytes)", req.Output, len(res.Source))
	return res, nil
}

// Check generates req in memory and compares it with the file at req.Output.
// A missing or different file returns an error wrapping ErrStaleOutput.
func (s *GenerationService) Check(req includefolder.GenerationRequest) (*Result, error) {
	if req.Output == "" {
		return nil, fmt.Errorf("output path is required: %w", includefolder.ErrInvalidConfig)
	}

	res, err := s.Generate(req)
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(req.Output)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%s does not exist: %w", req.Output, includefolder.ErrStaleOutput)
		}
		return nil, fmt.Errorf("failed to read %s: %w", req.Output, err)
	}
	if !bytes.Equal(existing, res.Source) {
		return res, fmt.Errorf("%s differs from %s (want %s): %w",
			req.Output, req.Path, res.Digest, includefolder.ErrStaleOutput)
	}
	return res, nil
}

// displayPath renders the embedded path relative to the output file's
// directory when possible, so headers do not leak absolute paths.
func displayPath(path, output string) string {
	if output == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	outDir, err := filepath.Abs(filepath.Dir(output))
	if err != nil {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(outDir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}
