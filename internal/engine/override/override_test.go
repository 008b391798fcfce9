package override_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/engine/override"
)

func basePackage() domain.PackageDefinition {
	return domain.PackageDefinition{
		Name:          "go",
		Version:       "1.22.1",
		Source:        "registry:go/1.22.1",
		Description:   "The Go programming language",
		BuildInputs:   []string{"gcc"},
		RuntimeInputs: []string{"glibc"},
		Metadata:      map[string]string{"license": "BSD-3-Clause"},
	}
}

func TestApply_SourceSubstitution(t *testing.T) {
	base := basePackage()
	local := "local:./toolchains/go"

	derived := override.Apply(base, domain.Patch{Source: &local})

	// Only the source changes; everything else is carried over.
	assert.Equal(t, local, derived.Source)
	assert.Equal(t, base.Name, derived.Name)
	assert.Equal(t, base.Version, derived.Version)
	assert.Equal(t, base.BuildInputs, derived.BuildInputs)
	assert.Equal(t, base.RuntimeInputs, derived.RuntimeInputs)

	// Provenance follows the source locator.
	assert.NotEqual(t, base.Identity(), derived.Identity())
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	base := basePackage()
	snapshot := base.Clone()

	local := "local:./toolchains/go"
	version := "1.23.0"
	_ = override.Apply(base, domain.Patch{
		Source:      &local,
		Version:     &version,
		BuildInputs: []string{"clang"},
		Metadata:    map[string]string{"license": "MIT"},
	})

	assert.Equal(t, snapshot, base)
}

func TestApply_EmptyPatchIsIdentity(t *testing.T) {
	base := basePackage()
	derived := override.Apply(base, domain.Patch{})
	assert.Equal(t, base, derived)
	assert.True(t, domain.Patch{}.IsZero())
}

func TestApply_Idempotent(t *testing.T) {
	base := basePackage()
	local := "local:./toolchains/go"
	patch := domain.Patch{Source: &local}

	once := override.Apply(base, patch)
	twice := override.Apply(once, patch)

	assert.Equal(t, once, twice)
}

func TestApply_ChainedOverrides(t *testing.T) {
	base := basePackage()
	local := "local:./toolchains/go"
	version := "1.23.0"

	// A derived definition is a valid base for a further override.
	first := override.Apply(base, domain.Patch{Source: &local})
	second := override.Apply(first, domain.Patch{Version: &version})

	assert.Equal(t, local, second.Source)
	assert.Equal(t, version, second.Version)
}

func TestApply_InputsReplacedNotMerged(t *testing.T) {
	base := basePackage()
	derived := override.Apply(base, domain.Patch{BuildInputs: []string{"clang", "make"}})
	assert.Equal(t, []string{"clang", "make"}, derived.BuildInputs)
}

func TestPatchFromFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		wantErr error
	}{
		{
			name: "all recognized fields",
			fields: map[string]any{
				"source":         "local:./go",
				"version":        "1.23.0",
				"description":    "patched",
				"build_inputs":   []any{"clang"},
				"runtime_inputs": []string{"musl"},
				"metadata":       map[string]any{"pin": "true"},
			},
		},
		{
			name:    "unknown field",
			fields:  map[string]any{"sourcee": "local:./go"},
			wantErr: domain.ErrUnknownField,
		},
		{
			name:    "unknown field with valid siblings",
			fields:  map[string]any{"source": "local:./go", "homepage": "https://go.dev"},
			wantErr: domain.ErrUnknownField,
		},
		{
			name:    "string field with number value",
			fields:  map[string]any{"version": 1.23},
			wantErr: domain.ErrFieldType,
		},
		{
			name:    "list field with string value",
			fields:  map[string]any{"build_inputs": "gcc"},
			wantErr: domain.ErrFieldType,
		},
		{
			name:    "list field with non-string element",
			fields:  map[string]any{"build_inputs": []any{"gcc", 1}},
			wantErr: domain.ErrFieldType,
		},
		{
			name:    "map field with non-string value",
			fields:  map[string]any{"metadata": map[string]any{"pin": true}},
			wantErr: domain.ErrFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := override.PatchFromFields(tt.fields)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, patch.IsZero())
		})
	}
}

func TestApplyFields(t *testing.T) {
	base := basePackage()

	derived, err := override.ApplyFields(base, map[string]any{"source": "local:./go"})
	require.NoError(t, err)
	assert.Equal(t, "local:./go", derived.Source)

	_, err = override.ApplyFields(base, map[string]any{"src": "local:./go"})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}
