// internal/snapshot/store.go
package snapshot

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/kagimura/lorekeeper/internal/types"
)

/*
 * Memoizing snapshot store.
 *
 * Loads and caches immutable documents by normalized logical path for the
 * store lifetime. Failures are cached as absent and never retried, so one
 * broken document cannot turn into repeated fetch attempts inside a single
 * resolution session.
 *
 * Concurrency: concurrent first loads of one path are serialized through a
 * per-path once guard; exactly one fetch happens and every caller shares
 * its outcome. Loaded documents are never mutated, so readers need no
 * further coordination.
 *
 * The store is the one component that observes degradation (missing or
 * malformed documents); it reports through an optional logger and the
 * query surface sees only ErrSnapshotNotFound.
 */

// Store memoizes parsed snapshot documents by normalized logical path.
type Store struct {
	source Source
	log    *slog.Logger

	mu      sync.Mutex
	entries map[string]*storeEntry
}

// storeEntry serializes the first load of one path.
type storeEntry struct {
	once sync.Once
	doc  *Document
	err  error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes degradation messages (malformed or missing documents)
// to the given logger. The default discards them; the core stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore returns an empty store reading from source.
func NewStore(source Source, opts ...Option) *Store {
	s := &Store{
		source:  source,
		log:     slog.New(slog.DiscardHandler),
		entries: make(map[string]*storeEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the memoized document for path, fetching on first use.
// A load failure is cached as absent for the store lifetime and surfaced
// as types.ErrSnapshotNotFound, never retried.
func (s *Store) Load(path string) (*Document, error) {
	key := Normalize(path)

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &storeEntry{}
		s.entries[key] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.doc, e.err = s.fetch(key)
	})
	return e.doc, e.err
}

// Clear drops every cached document so subsequent loads refetch.
// Intended for test isolation and request boundaries in long-running hosts.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]*storeEntry)
	s.mu.Unlock()
}

// fetch performs the single uncached load for a path.
func (s *Store) fetch(path string) (*Document, error) {
	raw, err := s.source.Fetch(path)
	if err != nil {
		if errors.Is(err, types.ErrSnapshotNotFound) {
			s.log.Debug("snapshot absent", "path", path)
		} else {
			s.log.Warn("snapshot fetch failed", "path", path, "err", err)
		}
		return nil, types.ErrSnapshotNotFound
	}

	doc, err := ParseDocument(path, raw)
	if err != nil {
		s.log.Warn("snapshot document malformed", "path", path, "err", err)
		return nil, types.ErrSnapshotNotFound
	}

	s.log.Debug("snapshot loaded", "path", path, "shape", doc.Shape.String(), "entries", len(doc.Entries()))
	return doc, nil
}
