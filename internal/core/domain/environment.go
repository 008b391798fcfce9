package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// EnvironmentDescriptor is the composed set of packages available in an
// interactive development shell: the transitive inputs of its seed packages
// followed by the explicitly requested extras, deduplicated by identity in
// first-seen order.
type EnvironmentDescriptor struct {
	Packages []PackageDefinition
}

// Contains reports whether the environment already holds a package with the
// given identity.
func (e EnvironmentDescriptor) Contains(id Identity) bool {
	for _, p := range e.Packages {
		if p.Identity() == id {
			return true
		}
	}
	return false
}

// ID creates a deterministic hash over the member identities in order.
// Identical environments (same packages, same order) share an ID, which is
// what makes environment snapshots reproducible.
func (e EnvironmentDescriptor) ID() string {
	var builder strings.Builder
	for _, p := range e.Packages {
		builder.WriteString(p.Identity().String())
		builder.WriteString(";")
	}
	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
