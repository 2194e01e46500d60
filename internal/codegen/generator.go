package codegen

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"mvdan.cc/gofumpt/format"

	"github.com/vvka-141/includefolder/internal/schema"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// receiver is the receiver name of generated Files methods.
const receiver = "d"

// Options controls the parts of the output that do not come from the tree.
type Options struct {
	// Package is the package clause. Required.
	Package string
	// Func is the accessor function name. Required.
	Func string
	// Tags is an optional //go:build expression.
	Tags string
	// Source is the embedded path, recorded in the header.
	Source string
	// Digest is the content digest, recorded in the header when set.
	Digest string
}

// Input bundles the three views of one normalized tree.
type Input struct {
	Schema    *schema.Schema
	Value     *schema.Value
	Exposures []schema.Exposure
}

// Generator produces formatted Go source.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders in as a complete Go file.
func (g *Generator) Generate(opts Options, in Input) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if in.Schema == nil || in.Value == nil {
		return nil, fmt.Errorf("generate: %w: schema and value are required", includefolder.ErrSchemaMismatch)
	}

	var b strings.Builder
	writeHeader(&b, opts)

	for _, def := range in.Schema.Types {
		writeStruct(&b, def)
	}
	writeAssertions(&b, in.Schema)
	for _, x := range in.Exposures {
		writeFilesMethod(&b, x)
	}
	writeAccessor(&b, opts.Func, in.Value)

	src, err := format.Source([]byte(b.String()), format.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return fmt.Errorf("package name %q is not a valid identifier: %w", o.Package, includefolder.ErrInvalidConfig)
	}
	if !token.IsIdentifier(o.Func) || o.Func == "_" {
		return &includefolder.IdentifierError{
			Kind:   includefolder.IdentifierFunction,
			Name:   o.Func,
			Reason: "must be a non-blank identifier",
		}
	}
	if strings.ContainsAny(o.Tags, "\r\n") {
		return fmt.Errorf("build tags must be a single line: %w", includefolder.ErrInvalidConfig)
	}
	return nil
}

func writeHeader(b *strings.Builder, opts Options) {
	if opts.Tags != "" {
		fmt.Fprintf(b, "//go:build %s\n\n", strings.TrimSpace(opts.Tags))
	}
	b.WriteString(includefolder.GeneratedHeader + "\n")
	if opts.Source != "" {
		fmt.Fprintf(b, "// Source: %s\n", filepath.ToSlash(opts.Source))
	}
	if opts.Digest != "" {
		fmt.Fprintf(b, "// Digest: %s\n", opts.Digest)
	}
	fmt.Fprintf(b, "\npackage %s\n\n", opts.Package)
	fmt.Fprintf(b, "import %q\n\n", includefolder.ImportPath)
}

func writeStruct(b *strings.Builder, def schema.TypeDef) {
	if len(def.Keys) == 0 {
		fmt.Fprintf(b, "// %s is the root of the embedded directory.\n", def.Name)
	} else {
		fmt.Fprintf(b, "// %s mirrors %s.\n", def.Name, def.Path())
	}
	if len(def.Fields) == 0 {
		fmt.Fprintf(b, "type %s struct{}\n\n", def.Name)
		return
	}
	fmt.Fprintf(b, "type %s struct {\n", def.Name)
	for _, f := range def.Fields {
		fmt.Fprintf(b, "\t%s %s\n", f.Name, fieldType(f))
	}
	b.WriteString("}\n\n")
}

func fieldType(f schema.Field) string {
	switch f.Kind {
	case schema.FieldText:
		return "includefolder.Text"
	case schema.FieldBlob:
		return "includefolder.Blob"
	default:
		return f.Type
	}
}

func writeAssertions(b *strings.Builder, s *schema.Schema) {
	b.WriteString("var (\n")
	for _, def := range s.Types {
		fmt.Fprintf(b, "\t_ includefolder.Directory = %s{}\n", def.Name)
	}
	b.WriteString(")\n\n")
}

func writeFilesMethod(b *strings.Builder, x schema.Exposure) {
	fmt.Fprintf(b, "// Files returns every file below %s, sorted by path.\n", x.Type)
	fmt.Fprintf(b, "func (%s %s) Files() []includefolder.File {\n", receiver, x.Type)
	if len(x.Files) == 0 {
		b.WriteString("\treturn nil\n}\n\n")
		return
	}
	b.WriteString("\treturn []includefolder.File{\n")
	for _, f := range x.Files {
		fmt.Fprintf(b, "\t\t{Path: %s, Data: %s.%s.ToFileContent()},\n",
			strconv.Quote(f.Path), receiver, f.Path)
	}
	b.WriteString("\t}\n}\n\n")
}

func writeAccessor(b *strings.Builder, name string, v *schema.Value) {
	fmt.Fprintf(b, "// %s returns the directory contents captured at generation time.\n", name)
	fmt.Fprintf(b, "func %s() %s {\n\treturn ", name, v.Type)
	writeValue(b, v, 1)
	b.WriteString("\n}\n")
}

func writeValue(b *strings.Builder, v *schema.Value, depth int) {
	if len(v.Fields) == 0 {
		fmt.Fprintf(b, "%s{}", v.Type)
		return
	}
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(b, "%s{\n", v.Type)
	for _, f := range v.Fields {
		fmt.Fprintf(b, "%s\t%s: ", indent, f.Name)
		if f.Struct != nil {
			writeValue(b, f.Struct, depth+1)
		} else {
			b.WriteString(Literal(f.Content))
		}
		b.WriteString(",\n")
	}
	fmt.Fprintf(b, "%s}", indent)
}

// Literal returns the Go expression for content: a quoted string for Text
// and an includefolder.Blob conversion of a quoted string for Blob. Both
// reproduce the original bytes exactly.
func Literal(content includefolder.FileContent) string {
	switch c := content.(type) {
	case includefolder.Text:
		return strconv.Quote(string(c))
	case includefolder.Blob:
		return "includefolder.Blob(" + strconv.Quote(string(c)) + ")"
	default:
		return `""`
	}
}
