package ports

import "go.trai.ch/strata/internal/core/domain"

// ManifestLoader loads and validates the declarative composition manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at the given path.
	Load(path string) (*domain.Manifest, error)

	// Discover walks up from cwd to find the nearest strata.hcl.
	// It returns the manifest path and the directory containing it.
	Discover(cwd string) (manifestPath, root string, err error)
}
