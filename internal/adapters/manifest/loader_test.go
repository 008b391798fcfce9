package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/manifest"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

// nopLogger satisfies ports.Logger for loader construction in tests.
type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

var _ ports.Logger = nopLogger{}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
platforms = ["linux-amd64", "darwin-arm64"]

package "go-local" {
  base = "go"

  override {
    source  = "local:./toolchains/go"
    version = "1.23.0"
  }
}

environment "dev" {
  inputs_from = ["go-local"]
  extras      = ["jq"]
}
`)

	loaded, err := manifest.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.Platform{"linux-amd64", "darwin-arm64"}, loaded.Platforms)

	require.Len(t, loaded.Packages, 1)
	pkg := loaded.Packages[0]
	assert.Equal(t, "go-local", pkg.Name)
	assert.Equal(t, "go", pkg.Base)
	assert.Equal(t, map[string]any{
		"source":  "local:./toolchains/go",
		"version": "1.23.0",
	}, pkg.Override)

	require.Len(t, loaded.Environments, 1)
	env := loaded.Environments[0]
	assert.Equal(t, "dev", env.Name)
	assert.Equal(t, []string{"go-local"}, env.InputsFrom)
	assert.Equal(t, []string{"jq"}, env.Extras)
}

func TestLoad_ListAndMapOverrides(t *testing.T) {
	path := writeManifest(t, `
platforms = ["linux-amd64"]

package "go-static" {
  base = "go"

  override {
    build_inputs = ["musl", "make"]
    metadata = {
      linkage = "static"
    }
  }
}
`)

	loaded, err := manifest.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)

	override := loaded.Packages[0].Override
	assert.Equal(t, []any{"musl", "make"}, override["build_inputs"])
	assert.Equal(t, map[string]any{"linkage": "static"}, override["metadata"])
}

func TestLoad_NoOverrideBlock(t *testing.T) {
	path := writeManifest(t, `
platforms = ["linux-amd64"]

package "go" {
  base = "go"
}
`)

	loaded, err := manifest.NewLoader(nopLogger{}).Load(path)
	require.NoError(t, err)
	assert.Nil(t, loaded.Packages[0].Override)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "syntax error",
			content: "platforms = [",
			wantErr: domain.ErrManifestParseFailed,
		},
		{
			name:    "missing platforms attribute",
			content: `package "go" { base = "go" }`,
			wantErr: domain.ErrManifestParseFailed,
		},
		{
			name:    "invalid platform identifier",
			content: `platforms = ["linuxamd64"]`,
			wantErr: domain.ErrInvalidPlatform,
		},
		{
			name:    "empty platform list",
			content: `platforms = []`,
			wantErr: domain.ErrNoPlatforms,
		},
		{
			name: "duplicate package name",
			content: `
platforms = ["linux-amd64"]
package "go" { base = "go" }
package "go" { base = "go-beta" }
`,
			wantErr: domain.ErrDuplicatePackage,
		},
		{
			name: "duplicate environment name",
			content: `
platforms = ["linux-amd64"]
environment "dev" {}
environment "dev" {}
`,
			wantErr: domain.ErrDuplicateEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := manifest.NewLoader(nopLogger{}).Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.NewLoader(nopLogger{}).Load(filepath.Join(t.TempDir(), domain.ManifestFileName))
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "services", "api")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	manifestPath := filepath.Join(root, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(manifestPath, []byte(`platforms = ["linux-amd64"]`), 0o644))

	loader := manifest.NewLoader(nopLogger{})

	// From the root itself.
	gotPath, gotRoot, err := loader.Discover(root)
	require.NoError(t, err)
	assert.Equal(t, manifestPath, gotPath)
	assert.Equal(t, root, gotRoot)

	// From a nested directory, walking up.
	gotPath, gotRoot, err = loader.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, manifestPath, gotPath)
	assert.Equal(t, root, gotRoot)
}

func TestDiscover_NotFound(t *testing.T) {
	_, _, err := manifest.NewLoader(nopLogger{}).Discover(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}
