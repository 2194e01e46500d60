package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/includefolder/internal/schema"
	"github.com/vvka-141/includefolder/internal/tree"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

func demoInput(t *testing.T) Input {
	t.Helper()
	root := tree.Normalize(tree.Branch(map[string]*tree.Node{
		"hello.txt": tree.Leaf(includefolder.Text("Hello World!\n")),
		"logo.png":  tree.Leaf(includefolder.Blob{0x89, 'P', 'N', 'G', 0x00, 0xff}),
		"nested": tree.Branch(map[string]*tree.Node{
			"folders": tree.Branch(map[string]*tree.Node{"test.txt": tree.Leaf(includefolder.Text("deep \"quoted\""))}),
		}),
		"empty": tree.Branch(nil),
	}))

	s, err := schema.Synthesize(root, "demo")
	require.NoError(t, err)
	v, err := schema.BuildInstance(root, s)
	require.NoError(t, err)
	x, err := schema.Expose(root, s)
	require.NoError(t, err)
	return Input{Schema: s, Value: v, Exposures: x}
}

func demoOptions() Options {
	return Options{Package: "demo", Func: "demo", Source: "assets", Digest: "blake3:abc"}
}

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "demo_gen.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))
	return f
}

func TestGenerate_Header(t *testing.T) {
	src, err := NewGenerator().Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)

	lines := strings.Split(string(src), "\n")
	assert.Equal(t, includefolder.GeneratedHeader, lines[0])
	assert.Equal(t, "// Source: assets", lines[1])
	assert.Equal(t, "// Digest: blake3:abc", lines[2])

	f := parse(t, src)
	assert.Equal(t, "demo", f.Name.Name)
	require.Len(t, f.Imports, 1)
	assert.Equal(t, strconv.Quote(includefolder.ImportPath), f.Imports[0].Path.Value)
	assert.True(t, ast.IsGenerated(f))
}

func TestGenerate_BuildTags(t *testing.T) {
	opts := demoOptions()
	opts.Tags = "embed_assets && !race"

	src, err := NewGenerator().Generate(opts, demoInput(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "//go:build embed_assets && !race\n\n"))
	parse(t, src)
}

func TestGenerate_Declarations(t *testing.T) {
	src, err := NewGenerator().Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)
	f := parse(t, src)

	structs := map[string][]string{}
	methods := map[string]bool{}
	var funcs []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st := ts.Type.(*ast.StructType)
				var fields []string
				for _, fld := range st.Fields.List {
					fields = append(fields, fld.Names[0].Name)
				}
				structs[ts.Name.Name] = fields
			}
		case *ast.FuncDecl:
			if d.Recv != nil {
				recv := d.Recv.List[0].Type.(*ast.Ident).Name
				assert.Equal(t, "Files", d.Name.Name)
				methods[recv] = true
				continue
			}
			funcs = append(funcs, d.Name.Name)
		}
	}

	assert.Equal(t, []string{"empty", "hello", "logo", "nested"}, structs["Demo"])
	assert.Equal(t, []string{"txt"}, structs["DemoHello"])
	assert.Equal(t, []string{"png"}, structs["DemoLogo"])
	assert.Empty(t, structs["DemoEmpty"])
	assert.Len(t, structs, 7)
	for name := range structs {
		assert.True(t, methods[name], "%s has no Files method", name)
	}
	assert.Equal(t, []string{"demo"}, funcs)
}

func TestGenerate_FilesMethodBody(t *testing.T) {
	src, err := NewGenerator().Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, `{Path: "hello.txt", Data: d.hello.txt.ToFileContent()},`)
	assert.Contains(t, out, `{Path: "nested.folders.test.txt", Data: d.nested.folders.test.txt.ToFileContent()},`)
	assert.Contains(t, out, `{Path: "folders.test.txt", Data: d.folders.test.txt.ToFileContent()},`)
	assert.Contains(t, out, "func (d DemoEmpty) Files() []includefolder.File {\n\treturn nil\n}")
	assert.Less(t,
		strings.Index(out, `Path: "hello.txt"`),
		strings.Index(out, `Path: "logo.png"`),
		"files are sorted by path")
}

func TestGenerate_Literals(t *testing.T) {
	src, err := NewGenerator().Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, `txt: "Hello World!\n",`)
	assert.Contains(t, out, `png: includefolder.Blob("\x89PNG\x00\xff"),`)
	assert.Contains(t, out, `txt: "deep \"quoted\"",`)
}

func TestGenerate_Idempotent(t *testing.T) {
	g := NewGenerator()
	a, err := g.Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)
	b, err := g.Generate(demoOptions(), demoInput(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		target error
	}{
		{"bad package", func(o *Options) { o.Package = "my-pkg" }, includefolder.ErrInvalidConfig},
		{"empty package", func(o *Options) { o.Package = "" }, includefolder.ErrInvalidConfig},
		{"keyword func", func(o *Options) { o.Func = "func" }, includefolder.ErrInvalidIdentifier},
		{"multi-line tags", func(o *Options) { o.Tags = "a\npackage evil" }, includefolder.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := demoOptions()
			tt.modify(&opts)
			_, err := NewGenerator().Generate(opts, demoInput(t))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLiteral_RoundTrip(t *testing.T) {
	tests := []includefolder.FileContent{
		includefolder.Text("Hello World!\n"),
		includefolder.Text("tabs\tand unicode ✓ and `backticks`"),
		includefolder.Text(""),
		includefolder.Blob{0x00, 0x01, 0xfe, 0xff},
		includefolder.Blob("\xc3\x28 invalid sequence"),
	}

	for _, content := range tests {
		lit := Literal(content)
		quoted := strings.TrimSuffix(strings.TrimPrefix(lit, "includefolder.Blob("), ")")
		raw, err := strconv.Unquote(quoted)
		require.NoError(t, err, lit)
		assert.Equal(t, content.Bytes(), []byte(raw), lit)
		assert.Equal(t, content.Kind() == includefolder.KindBlob, strings.HasPrefix(lit, "includefolder.Blob("))
	}
}
