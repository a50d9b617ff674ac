// internal/query/match.go
package query

import (
	"fmt"
	"strconv"
	"strings"
)

/*
 * Comparison strategies for entry queries.
 *
 * Two deliberately separate strategies selected by the fold flag:
 *   - matchStringified: exact comparison of canonical string renderings
 *   - matchFolded: case-insensitive comparison, string-typed values only
 *
 * The asymmetry is a behavioral contract, not an accident: numbers and
 * booleans participate in exact matching through their canonical rendering,
 * but a non-string stored value never matches under folding.
 */

// stringify renders a scalar value in canonical form for exact matching.
// Floats use minimal digits so 3 and 3.0 render identically, which lets a
// string query value match the float64 ids JSON decoding produces.
func stringify(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case bool:
		if n {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", n)
	}
}

// matchStringified reports whether stored equals want under canonical
// rendering. nil on either side never matches.
func matchStringified(stored, want any) bool {
	if stored == nil || want == nil {
		return false
	}
	return stringify(stored) == stringify(want)
}

// matchFolded reports whether stored equals want ignoring letter case.
// Only string-typed stored values participate.
func matchFolded(stored, want any) bool {
	s, ok := stored.(string)
	if !ok || want == nil {
		return false
	}
	return strings.EqualFold(s, stringify(want))
}
