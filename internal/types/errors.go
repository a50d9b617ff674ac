package types

import "errors"

// Sentinel errors for Lorekeeper operations.
var (
	// ErrSnapshotNotFound indicates no document exists at the requested path,
	// or a previous load failure was cached as absent.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMalformedDocument indicates a document was fetched but is not a
	// recognized shape (sequence, mapping, or data envelope).
	ErrMalformedDocument = errors.New("malformed snapshot document")

	// ErrEntryNotFound indicates no entry matched the query predicates.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrMetaUnavailable indicates the provenance metadata document is
	// missing or malformed. Registries degrade to an empty version list
	// rather than failing callers.
	ErrMetaUnavailable = errors.New("provenance metadata unavailable")

	// ErrUnsupportedBackend indicates an unknown snapshot source backend name.
	ErrUnsupportedBackend = errors.New("unsupported snapshot backend")
)
