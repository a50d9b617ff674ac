// internal/query/path.go
package query

import (
	"strings"

	"github.com/kagimura/lorekeeper/internal/types"
)

/*
 * Dotted-path resolution over schema-less entries.
 *
 * Splits the path on "." and walks nested mappings one segment at a time.
 * Absence is a first-class outcome, never a fault: an empty path, an empty
 * segment (consecutive dots), a non-mapping intermediate value, or a
 * missing key all resolve to (nil, false). Traversal depth is bounded by
 * MaxFieldPathSegments.
 */

// ResolvePath traverses nested mappings following a dotted path.
// Returns the resolved value and whether the full path resolved.
func ResolvePath(entry types.Entry, path string) (any, bool) {
	if entry == nil || path == "" {
		return nil, false
	}
	segments := strings.Split(path, ".")
	if len(segments) > types.MaxFieldPathSegments {
		return nil, false
	}

	var current any = map[string]any(entry)
	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
		var next any
		var ok bool
		switch m := current.(type) {
		case map[string]any:
			next, ok = m[seg]
		case types.Entry:
			next, ok = m[seg]
		default:
			return nil, false
		}
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
