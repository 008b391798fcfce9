package domain

import "go.trai.ch/zerr"

// Category names a class of evaluated artifacts.
type Category string

const (
	// CategoryPackages holds derived package definitions.
	CategoryPackages Category = "packages"
	// CategoryEnvironments holds composed environment descriptors.
	CategoryEnvironments Category = "environments"
)

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPackages, CategoryEnvironments:
		return Category(s), nil
	default:
		return "", zerr.With(ErrUnknownCategory, "category", s)
	}
}

// PerPlatformOutputs is what a generator produces for a single platform.
// Both maps must be non-nil even when empty; a nil map is a malformed
// result and rejected by the assembler.
type PerPlatformOutputs struct {
	Packages     map[string]PackageDefinition
	Environments map[string]EnvironmentDescriptor
}

// NewPerPlatformOutputs creates an empty, well-formed per-platform result.
func NewPerPlatformOutputs() PerPlatformOutputs {
	return PerPlatformOutputs{
		Packages:     make(map[string]PackageDefinition),
		Environments: make(map[string]EnvironmentDescriptor),
	}
}

// OutputTree is the final nested namespace produced by an evaluation,
// keyed category -> platform -> name. Every platform in the evaluated set
// appears under each category, even when it holds no entries.
type OutputTree struct {
	Packages     map[Platform]map[string]PackageDefinition
	Environments map[Platform]map[string]EnvironmentDescriptor
}

// NewOutputTree creates an empty output tree.
func NewOutputTree() *OutputTree {
	return &OutputTree{
		Packages:     make(map[Platform]map[string]PackageDefinition),
		Environments: make(map[Platform]map[string]EnvironmentDescriptor),
	}
}

// Platforms returns the platforms present in the tree, unordered.
func (t *OutputTree) Platforms() []Platform {
	platforms := make([]Platform, 0, len(t.Packages))
	for p := range t.Packages {
		platforms = append(platforms, p)
	}
	return platforms
}

// LookupPackage returns the package artifact at packages.<platform>.<name>.
func (t *OutputTree) LookupPackage(platform Platform, name string) (PackageDefinition, error) {
	byName, ok := t.Packages[platform]
	if !ok {
		return PackageDefinition{}, notFound(CategoryPackages, platform, name)
	}
	pkg, ok := byName[name]
	if !ok {
		return PackageDefinition{}, notFound(CategoryPackages, platform, name)
	}
	return pkg, nil
}

// LookupEnvironment returns the environment artifact at environments.<platform>.<name>.
func (t *OutputTree) LookupEnvironment(platform Platform, name string) (EnvironmentDescriptor, error) {
	byName, ok := t.Environments[platform]
	if !ok {
		return EnvironmentDescriptor{}, notFound(CategoryEnvironments, platform, name)
	}
	env, ok := byName[name]
	if !ok {
		return EnvironmentDescriptor{}, notFound(CategoryEnvironments, platform, name)
	}
	return env, nil
}

// Lookup resolves an exact (category, platform, name) key path. A missing
// path is a lookup error, never a panic.
func (t *OutputTree) Lookup(category Category, platform Platform, name string) (any, error) {
	switch category {
	case CategoryPackages:
		return t.LookupPackage(platform, name)
	case CategoryEnvironments:
		return t.LookupEnvironment(platform, name)
	default:
		return nil, zerr.With(ErrUnknownCategory, "category", string(category))
	}
}

func notFound(category Category, platform Platform, name string) error {
	err := zerr.With(ErrOutputNotFound, "category", string(category))
	err = zerr.With(err, "platform", platform.String())
	return zerr.With(err, "name", name)
}
