// Package registry implements the PackageRegistry port over a directory of
// YAML package documents with a platform table. The database is a fixed,
// pre-resolved package graph: lookups never trigger version resolution or
// network access.
package registry

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// Opener implements ports.RegistryOpener.
type Opener struct{}

// NewOpener creates a registry opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open reads the platform table and returns a lazily-loading registry handle.
func (o *Opener) Open(dir string) (ports.PackageRegistry, error) {
	return Open(dir)
}

// Registry is a read-only view over a registry directory. Package documents
// are loaded on first lookup and cached; concurrent lookups of the same
// package are collapsed via singleflight.
type Registry struct {
	dir         string
	platforms   []domain.Platform
	platformSet map[domain.Platform]bool

	group singleflight.Group
	mu    sync.RWMutex
	docs  map[string]*packageDocument
}

var _ ports.PackageRegistry = (*Registry)(nil)

// Open loads the platform table from dir and returns a registry handle.
func Open(dir string) (*Registry, error) {
	tablePath := domain.PlatformTablePath(dir)

	data, err := os.ReadFile(tablePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrRegistryNotFound, "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryReadFailed.Error()), "file", tablePath)
	}

	var table platformTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "file", tablePath)
	}

	platforms := make([]domain.Platform, 0, len(table.Platforms))
	platformSet := make(map[domain.Platform]bool, len(table.Platforms))
	for _, entry := range table.Platforms {
		platform, err := domain.ParsePlatform(entry.ID)
		if err != nil {
			return nil, zerr.With(err, "file", tablePath)
		}
		if platformSet[platform] {
			return nil, zerr.With(domain.ErrDuplicatePlatform, "platform", entry.ID)
		}
		platforms = append(platforms, platform)
		platformSet[platform] = true
	}

	return &Registry{
		dir:         dir,
		platforms:   platforms,
		platformSet: platformSet,
		docs:        make(map[string]*packageDocument),
	}, nil
}

// Platforms enumerates the platform table in declaration order.
func (r *Registry) Platforms() []domain.Platform {
	platforms := make([]domain.Platform, len(r.platforms))
	copy(platforms, r.platforms)
	return platforms
}

// HasPlatform reports whether the platform is in the platform table.
func (r *Registry) HasPlatform(platform domain.Platform) bool {
	return r.platformSet[platform]
}

// Lookup returns the definition for name on platform.
func (r *Registry) Lookup(name string, platform domain.Platform) (domain.PackageDefinition, error) {
	if !r.HasPlatform(platform) {
		return domain.PackageDefinition{}, zerr.With(domain.ErrUnknownPlatform, "platform", platform.String())
	}

	doc, err := r.loadDocument(name)
	if err != nil {
		return domain.PackageDefinition{}, err
	}

	source := doc.Source
	if s, ok := doc.Sources[platform.String()]; ok {
		source = s
	}
	if source == "" {
		return domain.PackageDefinition{}, notFound(name, platform)
	}

	// Definitions are handed out by value; input slices are copied so no
	// caller can reach back into the cached document.
	def := domain.PackageDefinition{
		Name:          doc.Name,
		Version:       doc.Version,
		Source:        source,
		Description:   doc.Description,
		BuildInputs:   doc.BuildInputs,
		RuntimeInputs: doc.RuntimeInputs,
		Metadata:      doc.Metadata,
	}
	return def.Clone(), nil
}

// loadDocument returns the cached document for name, reading it from disk on
// first access.
func (r *Registry) loadDocument(name string) (*packageDocument, error) {
	r.mu.RLock()
	doc, ok := r.docs[name]
	r.mu.RUnlock()
	if ok {
		return doc, nil
	}

	result, err, _ := r.group.Do(name, func() (any, error) {
		// Double-check under the group in case a previous flight cached it.
		r.mu.RLock()
		cached, ok := r.docs[name]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := r.readDocument(name)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.docs[name] = loaded
		r.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*packageDocument), nil
}

func (r *Registry) readDocument(name string) (*packageDocument, error) {
	path := domain.PackageDocumentPath(r.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryReadFailed.Error()), "file", path)
	}

	var doc packageDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "file", path)
	}

	if doc.Name == "" {
		doc.Name = name
	}
	if doc.Name != name {
		err := zerr.With(domain.ErrRegistryParseFailed, "file", path)
		return nil, zerr.With(err, "declared_name", doc.Name)
	}

	return &doc, nil
}

func notFound(name string, platform domain.Platform) error {
	err := zerr.With(domain.ErrPackageNotFound, "package", name)
	return zerr.With(err, "platform", platform.String())
}
