package includefolder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

func TestText_ImplementsFileContent(t *testing.T) {
	var d includefolder.Data = includefolder.Text("Hello World!\n")
	c := d.ToFileContent()

	assert.Equal(t, includefolder.KindText, c.Kind())
	assert.Equal(t, []byte("Hello World!\n"), c.Bytes())
	assert.Equal(t, 13, c.Len())
}

func TestBlob_ImplementsFileContent(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0x00, 0x01}
	var d includefolder.Data = includefolder.Blob(raw)
	c := d.ToFileContent()

	assert.Equal(t, includefolder.KindBlob, c.Kind())
	assert.Equal(t, raw, c.Bytes())
	assert.Equal(t, 4, c.Len())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", includefolder.KindText.String())
	assert.Equal(t, "blob", includefolder.KindBlob.String())
	assert.Equal(t, "unknown", includefolder.Kind(42).String())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b includefolder.FileContent
		want bool
	}{
		{"same text", includefolder.Text("a"), includefolder.Text("a"), true},
		{"different text", includefolder.Text("a"), includefolder.Text("b"), false},
		{"same blob", includefolder.Blob{1, 2}, includefolder.Blob{1, 2}, true},
		{"text vs blob with same bytes", includefolder.Text("a"), includefolder.Blob("a"), false},
		{"both nil", nil, nil, true},
		{"one nil", includefolder.Text(""), nil, false},
		{"empty blob vs nil blob", includefolder.Blob{}, includefolder.Blob(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, includefolder.Equal(tt.a, tt.b))
		})
	}
}

func TestLookup(t *testing.T) {
	files := []includefolder.File{
		{Path: "hello.txt", Data: includefolder.Text("hi")},
		{Path: "logo.png", Data: includefolder.Blob{0x89}},
	}

	got, ok := includefolder.Lookup(files, "logo.png")
	assert.True(t, ok)
	assert.Equal(t, includefolder.Blob{0x89}, got)

	_, ok = includefolder.Lookup(files, "missing")
	assert.False(t, ok)
}
