// Package generate turns a composition manifest into a Generator: the
// function the matrix resolver maps over every target platform.
package generate

import (
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/closure"
	"go.trai.ch/strata/internal/engine/override"
	"go.trai.ch/zerr"
)

// ManifestGenerator implements ports.Generator from a validated manifest.
// It holds no mutable state; the same instance is safe to use from
// concurrent platform evaluations.
type ManifestGenerator struct {
	manifest *domain.Manifest
}

var _ ports.Generator = (*ManifestGenerator)(nil)

// New creates a generator for the given manifest.
func New(manifest *domain.Manifest) *ManifestGenerator {
	return &ManifestGenerator{manifest: manifest}
}

// Generate evaluates one platform: it derives every manifest package from
// its base (a registry package, or an earlier derivation) via the override
// engine, then composes every manifest environment from package input
// closures plus extras. All registry access goes through the supplied
// platform-bound lookup.
func (g *ManifestGenerator) Generate(
	platform domain.Platform,
	lookup ports.LookupFunc,
) (domain.PerPlatformOutputs, error) {
	out := domain.NewPerPlatformOutputs()

	for _, spec := range g.manifest.Packages {
		// Earlier derivations take precedence over registry names, so a
		// package can use another manifest package as its base. Bases are
		// bound in declaration order.
		base, ok := out.Packages[spec.Base]
		if !ok {
			var err error
			base, err = lookup(spec.Base)
			if err != nil {
				return domain.PerPlatformOutputs{}, zerr.With(err, "package", spec.Name)
			}
		}

		derived, err := override.ApplyFields(base, spec.Override)
		if err != nil {
			return domain.PerPlatformOutputs{}, zerr.With(err, "package", spec.Name)
		}

		out.Packages[spec.Name] = derived
	}

	composer := closure.New(lookup)

	for _, spec := range g.manifest.Environments {
		seeds, err := g.resolveRefs(spec.InputsFrom, out.Packages, lookup)
		if err != nil {
			return domain.PerPlatformOutputs{}, zerr.With(err, "environment", spec.Name)
		}

		extras, err := g.resolveRefs(spec.Extras, out.Packages, lookup)
		if err != nil {
			return domain.PerPlatformOutputs{}, zerr.With(err, "environment", spec.Name)
		}

		env, err := composer.Compose(seeds, extras)
		if err != nil {
			return domain.PerPlatformOutputs{}, zerr.With(err, "environment", spec.Name)
		}

		out.Environments[spec.Name] = env
	}

	return out, nil
}

// resolveRefs resolves environment references: manifest package names take
// precedence over registry names, so an environment seeded from a derived
// package sees the overridden definition, not the upstream one.
func (g *ManifestGenerator) resolveRefs(
	refs []string,
	packages map[string]domain.PackageDefinition,
	lookup ports.LookupFunc,
) ([]domain.PackageDefinition, error) {
	defs := make([]domain.PackageDefinition, 0, len(refs))
	for _, ref := range refs {
		if def, ok := packages[ref]; ok {
			defs = append(defs, def)
			continue
		}
		def, err := lookup(ref)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
