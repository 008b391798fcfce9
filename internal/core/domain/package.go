package domain

import "maps"

// PackageDefinition describes how to build one unit of software, including
// its declared input dependencies. Definitions are value types: they are
// created by the registry (or derived via an override) and never mutated
// afterwards, which makes them safe to share across concurrent platform
// evaluations without locking.
type PackageDefinition struct {
	Name          string
	Version       string
	Source        string // opaque content locator, e.g. an upstream ref or a local tree
	Description   string
	BuildInputs   []string // names of packages required to build
	RuntimeInputs []string // names of packages required at run time
	Metadata      map[string]string
}

// Identity is the provenance-aware identity of a package definition:
// name, version and a fingerprint of the source locator. Two definitions
// with coincidentally equal fields but different provenance compare as
// distinct. Identity is comparable and usable as a map key.
type Identity struct {
	Name     string
	Version  string
	SourceFP uint64
}

// Identity returns the package's identity.
func (p PackageDefinition) Identity() Identity {
	return Identity{
		Name:     p.Name,
		Version:  p.Version,
		SourceFP: Fingerprint(p.Source),
	}
}

// String renders the identity as name@version#fingerprint.
func (id Identity) String() string {
	return id.Name + "@" + id.Version + "#" + FormatFingerprint(id.SourceFP)
}

// Clone returns a deep copy of the definition. Slices and maps are copied so
// the clone can be extended without affecting the original.
func (p PackageDefinition) Clone() PackageDefinition {
	c := p
	if p.BuildInputs != nil {
		c.BuildInputs = make([]string, len(p.BuildInputs))
		copy(c.BuildInputs, p.BuildInputs)
	}
	if p.RuntimeInputs != nil {
		c.RuntimeInputs = make([]string, len(p.RuntimeInputs))
		copy(c.RuntimeInputs, p.RuntimeInputs)
	}
	if p.Metadata != nil {
		c.Metadata = maps.Clone(p.Metadata)
	}
	return c
}

// Inputs returns the declared build inputs followed by the runtime inputs.
// The slice is freshly allocated.
func (p PackageDefinition) Inputs() []string {
	inputs := make([]string, 0, len(p.BuildInputs)+len(p.RuntimeInputs))
	inputs = append(inputs, p.BuildInputs...)
	inputs = append(inputs, p.RuntimeInputs...)
	return inputs
}
