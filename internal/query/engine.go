// internal/query/engine.go
package query

import (
	"github.com/kagimura/lorekeeper/internal/snapshot"
	"github.com/kagimura/lorekeeper/internal/types"
)

/*
 * Entry query engine over memoized snapshots.
 *
 * Every lookup is absence-tolerant: a missing or malformed snapshot yields
 * an empty scan, never an error, so composite operations (history, drops)
 * can evaluate each dependency independently and omit what is missing.
 *
 * Scan order is the document's normalized entry order: document order for
 * sequences, sorted-key order for keyed documents. Fields are addressed
 * through the dotted-path resolver, so nested fields participate in
 * queries the same way top-level ones do.
 */

// Engine answers field-predicate queries over snapshot documents.
type Engine struct {
	store *snapshot.Store
}

// NewEngine returns an engine reading from store.
func NewEngine(store *snapshot.Store) *Engine {
	return &Engine{store: store}
}

// AllEntries returns every entry of the snapshot at path in scan order.
// Missing or malformed snapshots yield an empty result, never an error.
func (e *Engine) AllEntries(path string) []types.Entry {
	doc, err := e.store.Load(path)
	if err != nil {
		return nil
	}
	return doc.Entries()
}

// FindByField returns the first entry whose field matches want, in scan
// order. fold selects case-insensitive matching (string-typed fields only);
// otherwise both sides compare through their canonical string rendering.
// Returns types.ErrEntryNotFound when nothing matches.
func (e *Engine) FindByField(path, field string, want any, fold bool) (types.Entry, error) {
	for _, entry := range e.AllEntries(path) {
		if entryMatches(entry, field, want, fold) {
			return entry, nil
		}
	}
	return nil, types.ErrEntryNotFound
}

// FindAllByField returns every matching entry, preserving scan order.
func (e *Engine) FindAllByField(path, field string, want any, fold bool) []types.Entry {
	var matches []types.Entry
	for _, entry := range e.AllEntries(path) {
		if entryMatches(entry, field, want, fold) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// FindByAnyField tries each field in priority order and returns the first
// successful lookup, short-circuiting on the first hit.
func (e *Engine) FindByAnyField(path string, fields []string, want any, fold bool) (types.Entry, error) {
	for _, field := range fields {
		if entry, err := e.FindByField(path, field, want, fold); err == nil {
			return entry, nil
		}
	}
	return nil, types.ErrEntryNotFound
}

// entryMatches applies the selected comparison strategy to one field.
// An unresolved field never matches.
func entryMatches(entry types.Entry, field string, want any, fold bool) bool {
	stored, ok := ResolvePath(entry, field)
	if !ok {
		return false
	}
	if fold {
		return matchFolded(stored, want)
	}
	return matchStringified(stored, want)
}
