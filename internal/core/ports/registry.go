// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/strata/internal/core/domain"

// LookupFunc resolves a package name for a single, already-bound platform.
// It is the view of the registry handed to generators so they never touch
// registry state directly.
type LookupFunc func(name string) (domain.PackageDefinition, error)

// PackageRegistry exposes the external package universe: a fixed,
// pre-resolved graph of package definitions keyed by name and platform.
// The core never mutates registry state.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PackageRegistry interface {
	// Lookup returns the definition for the given package on the given
	// platform. It returns domain.ErrPackageNotFound if the package does not
	// exist and domain.ErrUnknownPlatform if the platform is not in the
	// registry's platform table.
	Lookup(name string, platform domain.Platform) (domain.PackageDefinition, error)

	// Platforms enumerates the registry's platform table in declaration order.
	Platforms() []domain.Platform

	// HasPlatform reports whether the platform is in the platform table.
	HasPlatform(platform domain.Platform) bool
}
