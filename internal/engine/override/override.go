// Package override implements structural field overrides on package
// definitions: a pure merge of a base definition with a patch carrying only
// the changed fields. The base is never mutated; unchanged slices and maps
// are shared by reference, which is safe because definitions are immutable.
package override

import (
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Apply returns a new definition with the patch's fields replacing the
// base's. An empty patch returns the base unchanged, so Apply is idempotent
// under empty patches. Apply never fails: patches are validated at
// construction time (see PatchFromFields).
func Apply(base domain.PackageDefinition, patch domain.Patch) domain.PackageDefinition {
	derived := base

	if patch.Source != nil {
		derived.Source = *patch.Source
	}
	if patch.Version != nil {
		derived.Version = *patch.Version
	}
	if patch.Description != nil {
		derived.Description = *patch.Description
	}
	if patch.BuildInputs != nil {
		derived.BuildInputs = patch.BuildInputs
	}
	if patch.RuntimeInputs != nil {
		derived.RuntimeInputs = patch.RuntimeInputs
	}
	if patch.Metadata != nil {
		derived.Metadata = patch.Metadata
	}

	return derived
}

// PatchFromFields validates a raw field mapping against the package schema
// and converts it into a typed patch. Unrecognized keys fail with
// domain.ErrUnknownField; recognized keys with mismatched value types fail
// with domain.ErrFieldType. Failures are deterministic functions of the
// input and therefore non-retryable.
func PatchFromFields(fields map[string]any) (domain.Patch, error) {
	var patch domain.Patch

	for name, value := range fields {
		switch name {
		case domain.FieldSource:
			s, err := stringField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.Source = &s
		case domain.FieldVersion:
			s, err := stringField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.Version = &s
		case domain.FieldDescription:
			s, err := stringField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.Description = &s
		case domain.FieldBuildInputs:
			list, err := stringListField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.BuildInputs = list
		case domain.FieldRuntimeInputs:
			list, err := stringListField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.RuntimeInputs = list
		case domain.FieldMetadata:
			m, err := stringMapField(name, value)
			if err != nil {
				return domain.Patch{}, err
			}
			patch.Metadata = m
		default:
			return domain.Patch{}, zerr.With(domain.ErrUnknownField, "field", name)
		}
	}

	return patch, nil
}

// ApplyFields validates a raw field mapping and applies it to the base.
func ApplyFields(base domain.PackageDefinition, fields map[string]any) (domain.PackageDefinition, error) {
	patch, err := PatchFromFields(fields)
	if err != nil {
		return domain.PackageDefinition{}, err
	}
	return Apply(base, patch), nil
}

func stringField(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", typeError(name, "string", value)
	}
	return s, nil
}

func stringListField(name string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(name, "list of string", value)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, typeError(name, "list of string", value)
	}
}

func stringMapField(name string, value any) (map[string]string, error) {
	switch v := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(name, "map of string", value)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, typeError(name, "map of string", value)
	}
}

func typeError(name, want string, got any) error {
	err := zerr.With(domain.ErrFieldType, "field", name)
	err = zerr.With(err, "want", want)
	return zerr.With(err, "got", typeName(got))
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, float64:
		return "number"
	case []string, []any:
		return "list"
	case map[string]string, map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
