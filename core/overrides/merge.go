// Package overrides merges persisted per-job override documents over base
// configuration before the pipeline runs.
package overrides

import "cabinet-cost/core/types"

// Merge deep-merges override over base and returns a new document. Neither
// input is mutated. When both sides hold a nested map at a key the maps merge
// recursively; any other pairing (scalar, list, mixed) replaces wholesale.
// Keys absent from the override are no-ops, so a merge never deletes a base
// key. Merging the same override twice is identical to merging it once.
func Merge(base, override types.Document) types.Document {
	out := make(types.Document, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		bm, baseIsMap := asMap(out[k])
		om, overrideIsMap := asMap(v)
		if baseIsMap && overrideIsMap {
			out[k] = Merge(bm, om)
			continue
		}
		out[k] = v
	}
	return out
}

func asMap(v any) (types.Document, bool) {
	switch m := v.(type) {
	case types.Document:
		return m, true
	case map[string]any:
		return types.Document(m), true
	}
	return nil, false
}
