package domain

import "go.trai.ch/zerr"

// Manifest is the declarative composition template: for every listed
// platform it describes which packages to derive and which environments to
// compose. It is produced by the manifest loader and consumed by the
// generator; it never references registry state directly.
type Manifest struct {
	Platforms    []Platform
	Packages     []PackageSpec
	Environments []EnvironmentSpec
}

// PackageSpec derives a package from an upstream base definition with a set
// of field overrides.
type PackageSpec struct {
	// Name is the output name under packages.<platform>.
	Name string
	// Base is the upstream package to derive from, resolved via the registry.
	Base string
	// Override maps recognized field names to replacement values.
	// Unknown fields and type mismatches are rejected at override time.
	Override map[string]any
}

// EnvironmentSpec composes an environment from package input closures plus
// an explicit extras list.
type EnvironmentSpec struct {
	// Name is the output name under environments.<platform>.
	Name string
	// InputsFrom lists seed packages whose transitive inputs populate the
	// environment. Names refer to manifest packages first, then the registry.
	InputsFrom []string
	// Extras lists registry packages appended verbatim after the closure.
	Extras []string
}

// Validate checks the manifest's internal consistency: a valid platform
// set and unique package and environment names.
func (m *Manifest) Validate() error {
	if err := ValidatePlatforms(m.Platforms); err != nil {
		return err
	}

	pkgNames := make(map[string]bool, len(m.Packages))
	for _, spec := range m.Packages {
		if pkgNames[spec.Name] {
			return zerr.With(ErrDuplicatePackage, "package", spec.Name)
		}
		pkgNames[spec.Name] = true
	}

	envNames := make(map[string]bool, len(m.Environments))
	for _, spec := range m.Environments {
		if envNames[spec.Name] {
			return zerr.With(ErrDuplicateEnvironment, "environment", spec.Name)
		}
		envNames[spec.Name] = true
	}

	return nil
}
