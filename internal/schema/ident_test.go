package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

func TestFieldIdent(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"txt", false},
		{"hello", false},
		{"_private", false},
		{"Upper", false},
		{"héllo", false},
		{"2x", true},
		{"my-file", true},
		{"with space", true},
		{"type", true},
		{"func", true},
		{"_", true},
		{"Files", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FieldIdent(tt.name, "loc")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, includefolder.ErrInvalidIdentifier))
				var idErr *includefolder.IdentifierError
				require.True(t, errors.As(err, &idErr))
				assert.Equal(t, tt.name, idErr.Name)
				assert.Equal(t, "loc", idErr.Location)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, got, "field names are used verbatim")
		})
	}
}

func TestTypeIdent(t *testing.T) {
	got, err := TypeIdent("Demo", "hello", "hello")
	require.NoError(t, err)
	assert.Equal(t, "DemoHello", got)

	got, err = TypeIdent("Demo", "nested_folders", "nested_folders")
	require.NoError(t, err)
	assert.Equal(t, "DemoNestedFolders", got)
}

func TestRootTypeIdent(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"demo", "Demo", false},
		{"Demo", "Demo", false},
		{"my_assets", "MyAssets", false},
		{"web-static", "WebStatic", false},
		{"", "", true},
		{"9lives", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := RootTypeIdent(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, includefolder.ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuncIdent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Demo", "demo"},
		{"demo", "demo"},
		{"MyAssets", "myAssets"},
		{"my_assets", "myAssets"},
	}
	for _, tt := range tests {
		got, err := FuncIdent(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FuncIdent("Func")
	assert.ErrorIs(t, err, includefolder.ErrInvalidIdentifier, "lowerCamel of Func is a keyword")
}
