package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPlatform is returned when a platform is not present in the registry's platform table.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrInvalidPlatform is returned when a platform identifier is not of the form "os-arch".
	ErrInvalidPlatform = zerr.New("invalid platform identifier, expected format: os-arch")

	// ErrNoPlatforms is returned when an evaluation is requested with an empty platform set.
	ErrNoPlatforms = zerr.New("no platforms specified")

	// ErrDuplicatePlatform is returned when the same platform appears twice in the platform set.
	ErrDuplicatePlatform = zerr.New("duplicate platform")

	// ErrGeneratorFailed is returned when a per-platform generator fails.
	ErrGeneratorFailed = zerr.New("generator failed")

	// ErrUnknownField is returned when an override names a field the package schema does not recognize.
	ErrUnknownField = zerr.New("unknown override field")

	// ErrFieldType is returned when an override value does not match the field's declared type.
	ErrFieldType = zerr.New("override field has wrong type")

	// ErrCyclicDependency is returned when the package graph contains a dependency cycle.
	ErrCyclicDependency = zerr.New("cyclic dependency")

	// ErrMalformedOutput is returned when a per-platform result is missing a required category.
	ErrMalformedOutput = zerr.New("malformed per-platform output")

	// ErrPackageNotFound is returned when the registry has no definition for a package.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrOutputNotFound is returned when an output tree lookup names a missing entry.
	ErrOutputNotFound = zerr.New("output not found")

	// ErrUnknownCategory is returned when an output tree lookup names a category other than packages or environments.
	ErrUnknownCategory = zerr.New("unknown category, expected 'packages' or 'environments'")

	// ErrDuplicatePackage is returned when a manifest defines two packages with the same name.
	ErrDuplicatePackage = zerr.New("duplicate package definition")

	// ErrDuplicateEnvironment is returned when a manifest defines two environments with the same name.
	ErrDuplicateEnvironment = zerr.New("duplicate environment definition")

	// ErrManifestNotFound is returned when no manifest file can be located.
	ErrManifestNotFound = zerr.New("could not find strata.hcl")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrRegistryReadFailed is returned when a registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read registry file")

	// ErrRegistryParseFailed is returned when a registry file cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry file")

	// ErrRegistryNotFound is returned when the registry directory cannot be located.
	ErrRegistryNotFound = zerr.New("could not find registry directory")

	// ErrEvaluationFailed is returned when the evaluation of the output matrix fails.
	ErrEvaluationFailed = zerr.New("evaluation failed")
)
