// internal/snapshot/document.go
package snapshot

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kagimura/lorekeeper/internal/types"
)

/*
 * Document shape normalization.
 *
 * Snapshots arrive in three shapes: a bare sequence of entries, a bare
 * mapping of key -> entry, or either wrapped in a {"data": ...} envelope.
 * The shape is detected once at load time and every downstream consumer
 * operates on a normalized sequence view.
 *
 * Keyed documents enumerate in sorted-key order so scan order is stable
 * across processes (map iteration order is not). The mapping key doubles
 * as the entry identifier: when a keyed entry lacks an "id" field the key
 * is injected as one, since keyed collections index by id on the wire.
 *
 * Non-object members of a sequence or mapping carry no fields to query
 * and are skipped during normalization.
 */

// Shape identifies the normalized layout of a snapshot document.
type Shape int

const (
	// ShapeSequence is an ordered list of entries.
	ShapeSequence Shape = iota
	// ShapeKeyed is a mapping of key -> entry, enumerated key-sorted.
	ShapeKeyed
)

// String returns the shape name for logging.
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// Document is an immutable snapshot normalized at load time.
// Never mutated after construction; entries alias the parsed document and
// must be treated as read-only by callers.
type Document struct {
	Path    string
	Shape   Shape
	entries []types.Entry
}

// Entries returns the normalized entry sequence in scan order.
func (d *Document) Entries() []types.Entry {
	return d.entries
}

// ParseDocument decodes raw bytes and normalizes the document shape.
// Unparseable bytes or an unrecognized top-level shape yield
// types.ErrMalformedDocument.
func ParseDocument(path string, raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedDocument, err)
	}

	body, err := unwrapEnvelope(parsed, 0)
	if err != nil {
		return nil, err
	}

	switch v := body.(type) {
	case []any:
		entries := make([]types.Entry, 0, len(v))
		for _, elem := range v {
			if m, ok := elem.(map[string]any); ok {
				entries = append(entries, types.Entry(m))
			}
		}
		return &Document{Path: path, Shape: ShapeSequence, entries: entries}, nil

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]types.Entry, 0, len(v))
		for _, k := range keys {
			m, ok := v[k].(map[string]any)
			if !ok {
				continue
			}
			if _, ok := m["id"]; !ok {
				m["id"] = k
			}
			entries = append(entries, types.Entry(m))
		}
		return &Document{Path: path, Shape: ShapeKeyed, entries: entries}, nil

	default:
		return nil, types.ErrMalformedDocument
	}
}

// unwrapEnvelope peels {"data": <sequence-or-mapping>} wrappers.
// A mapping whose "data" key holds a scalar is an ordinary keyed document,
// not an envelope. Depth is bounded by MaxEnvelopeDepth.
func unwrapEnvelope(v any, depth int) (any, error) {
	if depth >= types.MaxEnvelopeDepth {
		return nil, types.ErrMalformedDocument
	}
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	inner, ok := m["data"]
	if !ok {
		return v, nil
	}
	switch inner.(type) {
	case []any, map[string]any:
		return unwrapEnvelope(inner, depth+1)
	default:
		return v, nil
	}
}
