package domain

// Field names recognized by the package override schema.
const (
	FieldSource        = "source"
	FieldVersion       = "version"
	FieldDescription   = "description"
	FieldBuildInputs   = "build_inputs"
	FieldRuntimeInputs = "runtime_inputs"
	FieldMetadata      = "metadata"
)

// Patch carries the changed fields of a package override. A nil pointer or
// nil slice/map means "leave the base field untouched"; overriding inputs or
// metadata always replaces the whole field rather than merging.
//
// Substituting Source is the primary supported case; input-field overrides
// are a separate, explicitly requested capability and are never implied by a
// source substitution.
type Patch struct {
	Source        *string
	Version       *string
	Description   *string
	BuildInputs   []string
	RuntimeInputs []string
	Metadata      map[string]string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Source == nil &&
		p.Version == nil &&
		p.Description == nil &&
		p.BuildInputs == nil &&
		p.RuntimeInputs == nil &&
		p.Metadata == nil
}
