// internal/provenance/registry.go

/*
Package provenance tracks which snapshot versions exist and which
fields were added to the wiki by hand rather than extracted from game
data.

The registry is fed by a single meta document:

	{
	  "versions": ["v1", "v2"],
	  "codex_added_fields": [
	    {"version": "v2", "file": "/Creature.json", "field": "weight"},
	    {"version": "v2", "file": "/Item.json", "field": "*"}
	  ]
	}

Version order follows the document; the registry never reorders it.
A rule matches a concrete (version, file, field) triple when the
version is equal and the file and field patterns each match, where
"*" matches anything. The two patterns are independent: {"file": "*", "field":
"weight"} marks weight as hand-added in every file.

The registry loads lazily and memoizes the outcome, failures included.
A missing or malformed meta document degrades every query to its zero
value so resolution keeps working without provenance data; Load
surfaces the cached error for callers that want to warn about degraded
output.
*/
package provenance

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kagimura/lorekeeper/internal/snapshot"
	"github.com/kagimura/lorekeeper/internal/types"
)

// Wildcard matches any file or any field in a provenance rule.
const Wildcard = "*"

// Rule marks fields of one snapshot version as hand-added.
type Rule struct {
	Version string `json:"version"`
	File    string `json:"file"`
	Field   string `json:"field"`
}

type metaDocument struct {
	Versions         []string `json:"versions"`
	CodexAddedFields []Rule   `json:"codex_added_fields"`
}

// Registry answers version enumeration and field provenance queries.
type Registry struct {
	source   snapshot.Source
	metaPath string

	mu       sync.Mutex
	loaded   bool
	loadErr  error
	versions []string
	rules    []Rule
}

// NewRegistry creates a registry reading its meta document from source
// at metaPath.
func NewRegistry(source snapshot.Source, metaPath string) *Registry {
	return &Registry{source: source, metaPath: metaPath}
}

// Load forces the meta document to be read and returns the cached
// outcome. Queries never fail; Load exists so callers can report a
// degraded registry.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	return r.loadErr
}

// Versions returns all known snapshot versions in document order.
func (r *Registry) Versions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	return append([]string(nil), r.versions...)
}

// Rules returns all provenance rules in document order.
func (r *Registry) Rules() []Rule {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	return append([]Rule(nil), r.rules...)
}

// IsIntroduced reports whether some rule marks field in file as
// hand-added in the given version.
func (r *Registry) IsIntroduced(version, file, field string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	for _, rule := range r.rules {
		if rule.Version != version {
			continue
		}
		if fileMatches(rule.File, file) && patternMatches(rule.Field, field) {
			return true
		}
	}
	return false
}

// HasWildcardFieldRule reports whether some rule marks every field of
// file as hand-added in the given version.
func (r *Registry) HasWildcardFieldRule(version, file string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	for _, rule := range r.rules {
		if rule.Version == version && rule.Field == Wildcard && fileMatches(rule.File, file) {
			return true
		}
	}
	return false
}

// Clear drops the cached meta document so the next query reloads it.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.loadErr = nil
	r.versions = nil
	r.rules = nil
}

func (r *Registry) loadLocked() {
	if r.loaded {
		return
	}
	r.loaded = true

	body, err := r.source.Fetch(r.metaPath)
	if err != nil {
		r.loadErr = fmt.Errorf("%w: %v", types.ErrMetaUnavailable, err)
		return
	}
	var meta metaDocument
	if err := json.Unmarshal(body, &meta); err != nil {
		r.loadErr = fmt.Errorf("%w: %v", types.ErrMetaUnavailable, err)
		return
	}
	r.versions = meta.Versions
	r.rules = meta.CodexAddedFields
}

// fileMatches compares a rule's file pattern against a logical path,
// ignoring leading slashes on either side.
func fileMatches(pattern, file string) bool {
	if pattern == Wildcard {
		return true
	}
	return snapshot.Normalize(pattern) == snapshot.Normalize(file)
}

func patternMatches(pattern, value string) bool {
	return pattern == Wildcard || pattern == value
}
