// Package domain contains the core domain models for declarative package and
// environment composition.
package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a target build environment as an "os-arch" pair,
// e.g. "linux-amd64" or "darwin-arm64". The set of valid platforms is
// closed and enumerated by the registry's platform table.
type Platform string

// ParsePlatform validates the shape of a platform identifier.
// It does not check membership in the registry's platform table.
func ParsePlatform(s string) (Platform, error) {
	os, arch, ok := strings.Cut(s, "-")
	if !ok || os == "" || arch == "" {
		return "", zerr.With(ErrInvalidPlatform, "platform", s)
	}
	return Platform(s), nil
}

// HostPlatform returns the platform identifier of the machine running strata.
func HostPlatform() Platform {
	return Platform(runtime.GOOS + "-" + runtime.GOARCH)
}

// OS returns the operating system component of the platform.
func (p Platform) OS() string {
	os, _, _ := strings.Cut(string(p), "-")
	return os
}

// Arch returns the architecture component of the platform.
func (p Platform) Arch() string {
	_, arch, _ := strings.Cut(string(p), "-")
	return arch
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// ValidatePlatforms checks that a platform set is non-empty and free of duplicates.
func ValidatePlatforms(platforms []Platform) error {
	if len(platforms) == 0 {
		return ErrNoPlatforms
	}
	seen := make(map[Platform]bool, len(platforms))
	for _, p := range platforms {
		if seen[p] {
			return zerr.With(ErrDuplicatePlatform, "platform", p.String())
		}
		seen[p] = true
	}
	return nil
}
