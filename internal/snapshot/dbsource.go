// internal/snapshot/dbsource.go
package snapshot

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kagimura/lorekeeper/internal/core/db"
	"github.com/kagimura/lorekeeper/internal/types"
)

// DBSource serves documents from the pages mirror database.
// The mirror stores one row per logical path (normalized, no leading
// separator), written by the pages load command.
type DBSource struct {
	queries *db.Queries
}

// NewDBSource returns a source backed by the mirror's named queries.
func NewDBSource(queries *db.Queries) *DBSource {
	return &DBSource{queries: queries}
}

// Fetch reads the page body for path.
func (s *DBSource) Fetch(path string) ([]byte, error) {
	var body string
	err := s.queries.Get("get-page", &body, Normalize(path))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("fetch page %s: %w", path, err)
	}
	return []byte(body), nil
}
