package manifest

import (
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// ctyToGo converts an HCL attribute value into the plain Go representation
// consumed by the override engine. Conversion is shape-preserving: strings,
// numbers and bools map to their Go counterparts, collections map to []any
// and map[string]any. Type validation against the package schema is not done
// here; the override engine rejects mismatches with its own error kinds.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil
	case t.IsListType() || t.IsTupleType() || t.IsSetType():
		items := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			item, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case t.IsMapType() || t.IsObjectType():
		entries := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			entry, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			entries[kv.AsString()] = entry
		}
		return entries, nil
	default:
		return nil, zerr.With(domain.ErrManifestParseFailed, "unsupported_type", t.FriendlyName())
	}
}
