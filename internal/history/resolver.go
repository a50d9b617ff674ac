// internal/history/resolver.go

/*
Package history walks the known snapshot versions for one entity and
reports how a field, or the whole entry, changed over time.

A historical version's document for logical path P lives at the same
relative path rooted under that version's namespace: with prefix
"/History", version "v2" of "/Creature.json" is addressed as
"/History/v2/Creature.json".

Timelines are tolerant by construction. A version whose snapshot is
missing, malformed, or simply does not contain the entity is omitted
from the result rather than failing the query. A version where the
entity exists but the requested field does not is recorded with a null
value, since the entity itself was present.

Returned entries are deep copies. Callers own the result and may
mutate it freely without touching the snapshot cache.
*/
package history

import (
	"sort"
	"strings"

	"github.com/kagimura/lorekeeper/internal/provenance"
	"github.com/kagimura/lorekeeper/internal/query"
	"github.com/kagimura/lorekeeper/internal/types"
)

// FieldVersion is one version's value of a single field.
type FieldVersion struct {
	Value      any  `json:"value"`
	Introduced bool `json:"introduced_here"`
}

// ObjectVersion is one version's full entry, with the names of the
// fields considered hand-added at that version.
type ObjectVersion struct {
	Entry            types.Entry `json:"entry"`
	IntroducedFields []string    `json:"introduced_fields"`
}

// Resolver produces per-version timelines for entities.
type Resolver struct {
	engine   *query.Engine
	registry *provenance.Registry
	prefix   string
}

// NewResolver creates a resolver reading historical snapshots under
// historyPrefix, e.g. "/History".
func NewResolver(engine *query.Engine, registry *provenance.Registry, historyPrefix string) *Resolver {
	return &Resolver{engine: engine, registry: registry, prefix: historyPrefix}
}

// HistoricalPath rewrites a logical path under a version's namespace.
func (r *Resolver) HistoricalPath(version, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.prefix + "/" + version + path
}

// FieldHistory returns, per version in which the entity exists, the
// value of fieldPath and whether provenance rules mark it as
// hand-added at that version. Provenance rules are matched against
// the logical path, not the rewritten historical one.
func (r *Resolver) FieldHistory(path string, id any, fieldPath string) map[string]FieldVersion {
	result := make(map[string]FieldVersion)
	for _, version := range r.registry.Versions() {
		entry, err := r.engine.FindByField(r.HistoricalPath(version, path), "id", id, false)
		if err != nil {
			continue
		}
		value, _ := query.ResolvePath(entry, fieldPath)
		result[version] = FieldVersion{
			Value:      types.CloneValue(value),
			Introduced: r.registry.IsIntroduced(version, path, fieldPath),
		}
	}
	return result
}

// ObjectHistory returns, per version in which the entity exists, a
// copy of the whole entry plus the fields introduced at that version.
// A wildcard field rule marks every field of the entry; otherwise
// only fields named by a specific rule are marked.
func (r *Resolver) ObjectHistory(path string, id any) map[string]ObjectVersion {
	result := make(map[string]ObjectVersion)
	for _, version := range r.registry.Versions() {
		entry, err := r.engine.FindByField(r.HistoricalPath(version, path), "id", id, false)
		if err != nil {
			continue
		}
		result[version] = ObjectVersion{
			Entry:            entry.Clone(),
			IntroducedFields: r.introducedFields(version, path, entry),
		}
	}
	return result
}

func (r *Resolver) introducedFields(version, path string, entry types.Entry) []string {
	wildcard := r.registry.HasWildcardFieldRule(version, path)
	fields := make([]string, 0, len(entry))
	for name := range entry {
		if wildcard || r.registry.IsIntroduced(version, path, name) {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}
