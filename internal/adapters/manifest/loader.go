// Package manifest provides the HCL loader for the strata.hcl composition
// manifest.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ManifestLoader using HCL files.
type Loader struct {
	logger ports.Logger
}

var _ ports.ManifestLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and validates the manifest at the given path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, parseError(path, diags)
	}

	var root manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, parseError(path, diags)
	}

	manifest, err := l.translate(&root)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := manifest.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return manifest, nil
}

// Discover walks up from cwd to the filesystem root looking for strata.hcl.
func (l *Loader) Discover(cwd string) (string, string, error) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

// translate converts decoded HCL blocks into the domain manifest.
func (l *Loader) translate(root *manifestFile) (*domain.Manifest, error) {
	manifest := &domain.Manifest{
		Platforms:    make([]domain.Platform, 0, len(root.Platforms)),
		Packages:     make([]domain.PackageSpec, 0, len(root.Packages)),
		Environments: make([]domain.EnvironmentSpec, 0, len(root.Environments)),
	}

	for _, id := range root.Platforms {
		platform, err := domain.ParsePlatform(id)
		if err != nil {
			return nil, err
		}
		manifest.Platforms = append(manifest.Platforms, platform)
	}

	for _, block := range root.Packages {
		fields, err := l.overrideFields(block)
		if err != nil {
			return nil, err
		}
		manifest.Packages = append(manifest.Packages, domain.PackageSpec{
			Name:     block.Name,
			Base:     block.Base,
			Override: fields,
		})
	}

	for _, block := range root.Environments {
		manifest.Environments = append(manifest.Environments, domain.EnvironmentSpec{
			Name:       block.Name,
			InputsFrom: block.InputsFrom,
			Extras:     block.Extras,
		})
	}

	return manifest, nil
}

// overrideFields decodes an override block's attributes generically. Field
// names are not checked here: the override engine owns the package schema
// and rejects unknown fields and type mismatches at apply time.
func (l *Loader) overrideFields(block *packageBlock) (map[string]any, error) {
	if block.Override == nil {
		return nil, nil
	}

	attrs, diags := block.Override.Remain.JustAttributes()
	if diags.HasErrors() {
		return nil, zerr.With(wrapDiags(diags), "package", block.Name)
	}

	fields := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, zerr.With(wrapDiags(diags), "package", block.Name)
		}

		converted, err := ctyToGo(value)
		if err != nil {
			return nil, zerr.With(err, "package", block.Name)
		}
		fields[name] = converted
	}

	return fields, nil
}

func parseError(path string, diags error) error {
	return zerr.With(wrapDiags(diags), "file", path)
}

func wrapDiags(diags error) error {
	return zerr.Wrap(diags, domain.ErrManifestParseFailed.Error())
}
