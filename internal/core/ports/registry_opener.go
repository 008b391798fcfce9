package ports

// RegistryOpener opens a package registry rooted at a directory.
//
//go:generate mockgen -source=registry_opener.go -destination=mocks/mock_registry_opener.go -package=mocks
type RegistryOpener interface {
	// Open loads the registry's platform table and returns a handle for
	// package lookups. Package documents are loaded lazily.
	Open(dir string) (PackageRegistry, error)
}
