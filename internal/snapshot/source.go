// internal/snapshot/source.go
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kagimura/lorekeeper/internal/types"
)

// Source returns raw document bytes for a logical path.
// Implementations report a missing document as types.ErrSnapshotNotFound;
// any other error is an infrastructure failure. Leading separators in the
// path are ignored.
type Source interface {
	Fetch(path string) ([]byte, error)
}

// Normalize strips leading separators from a logical path.
// Cache keys and mirror rows use the normalized form.
func Normalize(path string) string {
	return strings.TrimLeft(path, "/")
}

// DirSource serves documents from a directory tree mirroring the logical
// path layout: /Creature.json maps to <root>/Creature.json and
// /History/v1/Creature.json to <root>/History/v1/Creature.json.
type DirSource struct {
	root string
}

// NewDirSource returns a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// Fetch reads the document file for path.
// Paths escaping the root resolve to not-found rather than an error so a
// crafted logical path cannot read outside the snapshot tree.
func (s *DirSource) Fetch(path string) ([]byte, error) {
	rel := Normalize(path)
	if rel == "" {
		return nil, types.ErrSnapshotNotFound
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, types.ErrSnapshotNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return data, nil
}
