package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project composition manifest.
	ManifestFileName = "strata.hcl"

	// RegistryDirName is the name of the registry database directory.
	RegistryDirName = "registry"

	// PlatformTableFileName is the name of the registry's platform table.
	PlatformTableFileName = "platforms.yaml"

	// PackagesDirName is the name of the registry's package document directory.
	PackagesDirName = "packages"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRegistryPath returns the registry directory relative to a project root.
func DefaultRegistryPath(root string) string {
	return filepath.Join(root, RegistryDirName)
}

// PlatformTablePath returns the platform table path inside a registry directory.
func PlatformTablePath(registryDir string) string {
	return filepath.Join(registryDir, PlatformTableFileName)
}

// PackageDocumentPath returns the document path for a package inside a registry directory.
func PackageDocumentPath(registryDir, name string) string {
	return filepath.Join(registryDir, PackagesDirName, name+".yaml")
}
