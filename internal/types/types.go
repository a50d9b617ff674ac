// Package types provides domain models shared across Lorekeeper components.
//
// Zero-dependency design: types.go, errors.go and creature.go use only the
// standard library. ID utilities in ids.go import uuid but are isolated so
// embedding callers can skip them.
package types

// Entry represents a single record within a snapshot document.
// Plain map preserves the schema-less source structure; resolvers traverse
// nested values directly instead of binding to structs. Entries handed out
// by the query layer alias the snapshot cache and must be treated as
// read-only; history results are cloned before they cross that boundary.
type Entry map[string]any

// Clone returns a deep copy of the entry.
// History timelines hand entries to callers; copies keep caller writes from
// leaking back into the snapshot cache.
func (e Entry) Clone() Entry {
	if e == nil {
		return nil
	}
	return Entry(CloneValue(map[string]any(e)).(map[string]any))
}

// CloneValue deep-copies a decoded JSON value (mappings, sequences, scalars).
// Scalars are immutable and returned as-is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = CloneValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = CloneValue(elem)
		}
		return out
	default:
		return v
	}
}

// Resource limits enforced during snapshot normalization and path resolution.
const (
	// MaxEnvelopeDepth bounds recursive envelope unwrapping at load time.
	// Documents nest {"data": ...} once in practice; 8 levels tolerates
	// future wrapping without unbounded recursion.
	MaxEnvelopeDepth = 8

	// MaxFieldPathSegments bounds dotted-path traversal depth.
	// 64 segments is far beyond any real field path; deeper paths resolve
	// to absent.
	MaxFieldPathSegments = 64
)
