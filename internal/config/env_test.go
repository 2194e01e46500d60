package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPackage, EnvTags, EnvOutputDir, EnvGoPackage} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults_FromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gen.env")
	require.NoError(t, os.WriteFile(path, []byte("INCLUDEFOLDER_PACKAGE=assets\nINCLUDEFOLDER_TAGS=embed\nINCLUDEFOLDER_OUTPUT_DIR=gen\n"), 0o644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults{Package: "assets", Tags: "embed", OutputDir: "gen"}, d)
}

func TestLoadDefaults_ProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPackage, "fromenv")
	t.Setenv(EnvGoPackage, "gopkg")
	path := filepath.Join(t.TempDir(), "gen.env")
	require.NoError(t, os.WriteFile(path, []byte("INCLUDEFOLDER_PACKAGE=fromfile\n"), 0o644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", d.Package)
	assert.Equal(t, "gopkg", d.GoPackage)
}

func TestLoadDefaults_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, includefolder.ErrInvalidConfig)
}

func TestLoadDefaults_NoFiles(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	d, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestDefaults_Apply(t *testing.T) {
	tests := []struct {
		name     string
		defaults Defaults
		req      includefolder.GenerationRequest
		want     includefolder.GenerationRequest
	}{
		{
			name:     "request values win",
			defaults: Defaults{Package: "p", Tags: "t", OutputDir: "gen", GoPackage: "g"},
			req:      includefolder.GenerationRequest{Path: "a", Name: "Demo", Package: "mine", Tags: "x", Output: "out.go"},
			want:     includefolder.GenerationRequest{Path: "a", Name: "Demo", Package: "mine", Tags: "x", Output: "out.go"},
		},
		{
			name:     "env file package before GOPACKAGE",
			defaults: Defaults{Package: "p", GoPackage: "g"},
			req:      includefolder.GenerationRequest{Path: "a", Name: "MyAssets"},
			want:     includefolder.GenerationRequest{Path: "a", Name: "MyAssets", Package: "p", Output: "my_assets_gen.go"},
		},
		{
			name:     "GOPACKAGE fallback",
			defaults: Defaults{GoPackage: "g", OutputDir: "gen"},
			req:      includefolder.GenerationRequest{Path: "a", Name: "demo"},
			want:     includefolder.GenerationRequest{Path: "a", Name: "demo", Package: "g", Output: filepath.Join("gen", "demo_gen.go")},
		},
		{
			name:     "output directory name fallback",
			defaults: Defaults{},
			req:      includefolder.GenerationRequest{Path: "a", Name: "demo", Output: "/tmp/web-assets/demo_gen.go"},
			want:     includefolder.GenerationRequest{Path: "a", Name: "demo", Package: "web_assets", Output: "/tmp/web-assets/demo_gen.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.defaults.Apply(tt.req))
		})
	}
}
