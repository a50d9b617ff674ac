package query

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/kagimura/lorekeeper/internal/snapshot"
	"github.com/kagimura/lorekeeper/internal/types"
)

// mapSource serves fixed documents keyed by normalized path.
type mapSource map[string]string

func (s mapSource) Fetch(path string) ([]byte, error) {
	body, ok := s[snapshot.Normalize(path)]
	if !ok {
		return nil, types.ErrSnapshotNotFound
	}
	return []byte(body), nil
}

func newTestEngine(docs map[string]string) *Engine {
	return NewEngine(snapshot.NewStore(mapSource(docs)))
}

func TestAllEntries(t *testing.T) {
	engine := newTestEngine(map[string]string{
		"seq.json":    `[{"id": 1}, {"id": 2}, {"id": 3}]`,
		"keyed.json":  `{"b": {"v": 2}, "a": {"v": 1}}`,
		"env.json":    `{"data": [{"id": 9}]}`,
		"broken.json": `"not a collection"`,
	})

	t.Run("sequence preserves document order", func(t *testing.T) {
		entries := engine.AllEntries("/seq.json")
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i, want := range []float64{1, 2, 3} {
			if entries[i]["id"] != want {
				t.Errorf("entries[%d] id = %v, want %v", i, entries[i]["id"], want)
			}
		}
	})

	t.Run("keyed enumerates key-sorted", func(t *testing.T) {
		entries := engine.AllEntries("/keyed.json")
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0]["id"] != "a" || entries[1]["id"] != "b" {
			t.Errorf("unexpected order: %v, %v", entries[0]["id"], entries[1]["id"])
		}
	})

	t.Run("envelope unwraps", func(t *testing.T) {
		if entries := engine.AllEntries("/env.json"); len(entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("missing snapshot yields empty", func(t *testing.T) {
		if entries := engine.AllEntries("/missing.json"); len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})

	t.Run("malformed snapshot yields empty", func(t *testing.T) {
		if entries := engine.AllEntries("/broken.json"); len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})
}

func TestFindByField(t *testing.T) {
	engine := newTestEngine(map[string]string{
		"Creature.json": `[
			{"id": 1, "name_en": "Forest Wolf", "stats": {"atk": 12}},
			{"id": 2, "name_en": "forest wolf"},
			{"id": 3, "name_en": "Cave Bear"}
		]`,
		"Item.json": `{"5": {"name_en": "Ore"}, "6": {"name_en": "Gem"}}`,
	})

	t.Run("first match in scan order", func(t *testing.T) {
		entry, err := engine.FindByField("/Creature.json", "name_en", "forest wolf", true)
		if err != nil {
			t.Fatalf("FindByField failed: %v", err)
		}
		if entry["id"] != float64(1) {
			t.Errorf("expected first matching entry (id 1), got id %v", entry["id"])
		}
	})

	t.Run("exact match is case-sensitive", func(t *testing.T) {
		_, err := engine.FindByField("/Creature.json", "name_en", "forest Wolf", false)
		if !errors.Is(err, types.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("numeric id matches string query", func(t *testing.T) {
		entry, err := engine.FindByField("/Creature.json", "id", "2", false)
		if err != nil {
			t.Fatalf("FindByField failed: %v", err)
		}
		if entry["name_en"] != "forest wolf" {
			t.Errorf("unexpected entry: %v", entry)
		}
	})

	t.Run("keyed document lookup by injected id", func(t *testing.T) {
		entry, err := engine.FindByField("/Item.json", "id", 5, false)
		if err != nil {
			t.Fatalf("FindByField failed: %v", err)
		}
		if entry["name_en"] != "Ore" {
			t.Errorf("expected Ore, got %v", entry["name_en"])
		}
	})

	t.Run("dotted field path", func(t *testing.T) {
		entry, err := engine.FindByField("/Creature.json", "stats.atk", 12, false)
		if err != nil {
			t.Fatalf("FindByField failed: %v", err)
		}
		if entry["id"] != float64(1) {
			t.Errorf("expected id 1, got %v", entry["id"])
		}
	})

	t.Run("missing snapshot", func(t *testing.T) {
		_, err := engine.FindByField("/nope.json", "id", 1, false)
		if !errors.Is(err, types.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestFindAllByField(t *testing.T) {
	engine := newTestEngine(map[string]string{
		"CreatureDrop.json": `[
			{"drop_id": 10, "item_id": 5},
			{"drop_id": 11, "item_id": 7},
			{"drop_id": 10, "item_id": 6}
		]`,
	})

	t.Run("every match in scan order", func(t *testing.T) {
		rows := engine.FindAllByField("/CreatureDrop.json", "drop_id", 10, false)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0]["item_id"] != float64(5) || rows[1]["item_id"] != float64(6) {
			t.Errorf("unexpected row order: %v", rows)
		}
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		if rows := engine.FindAllByField("/CreatureDrop.json", "drop_id", 99, false); len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}

func TestFindByAnyField(t *testing.T) {
	engine := newTestEngine(map[string]string{
		"Item.json": `[
			{"id": 7, "legacy_id": 5, "name_en": "Old Ore"},
			{"id": 5, "name_en": "Ore"}
		]`,
	})

	t.Run("priority order decides between candidates", func(t *testing.T) {
		entry, err := engine.FindByAnyField("/Item.json", []string{"id", "legacy_id"}, 5, false)
		if err != nil {
			t.Fatalf("FindByAnyField failed: %v", err)
		}
		if entry["name_en"] != "Ore" {
			t.Errorf("expected id-priority hit, got %v", entry["name_en"])
		}

		entry, err = engine.FindByAnyField("/Item.json", []string{"legacy_id", "id"}, 5, false)
		if err != nil {
			t.Fatalf("FindByAnyField failed: %v", err)
		}
		if entry["name_en"] != "Old Ore" {
			t.Errorf("expected legacy_id-priority hit, got %v", entry["name_en"])
		}
	})

	t.Run("no field matches", func(t *testing.T) {
		_, err := engine.FindByAnyField("/Item.json", []string{"id", "legacy_id"}, 99, false)
		if !errors.Is(err, types.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("empty field list", func(t *testing.T) {
		_, err := engine.FindByAnyField("/Item.json", nil, 5, false)
		if !errors.Is(err, types.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

// Property-based test: any entry present in a snapshot is findable by id
func TestFindByField_PropertyFindsEveryID(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every entry is findable by its id", prop.ForAll(
		func(values []int, pick int) bool {
			if len(values) == 0 {
				return true
			}
			seq := make([]map[string]any, len(values))
			for i, v := range values {
				seq[i] = map[string]any{"id": i, "v": v}
			}
			raw, _ := json.Marshal(seq)
			engine := newTestEngine(map[string]string{"doc.json": string(raw)})

			idx := pick % len(values)
			if idx < 0 {
				idx = -idx
			}
			entry, err := engine.FindByField("/doc.json", "id", idx, false)
			if err != nil {
				return false
			}
			return entry["v"] == float64(values[idx])
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
		gen.Int(),
	))

	properties.TestingRun(t)
}
