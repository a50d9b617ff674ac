// internal/creature/coerce.go

package creature

import (
	"strconv"

	"github.com/kagimura/lorekeeper/internal/types"
)

// Snapshot entries carry numbers as float64 and occasionally as
// strings. Field accessors coerce to the target type and fall back to
// the zero value, mirroring how a typed decode would default a
// missing or mistyped field.

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func intField(entry types.Entry, field string) int64 {
	n, _ := asInt64(entry[field])
	return n
}

func floatField(entry types.Entry, field string) float64 {
	f, _ := asFloat64(entry[field])
	return f
}

func stringField(entry types.Entry, field string) string {
	s, _ := entry[field].(string)
	return s
}
