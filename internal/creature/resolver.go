// internal/creature/resolver.go

/*
Package creature composes query engine lookups across the creature,
drop table, and item collections into presentation-ready records.

Drop resolution walks a fixed pipeline. The creature's drop edges are
sorted by minimum level, each edge's drop table rows are grouped by
group id in first-seen order, every row's item reference is resolved
to display names, and each group's row probabilities are derived from
its accumulated total weight. Groups that end up empty are dropped,
and a level bracket with no surviving groups is dropped whole.

Missing data never fails a resolution. An absent creature or drop
list yields an empty result, and an unresolvable item reference is
rendered with a sentinel display name so the surrounding group stays
internally consistent.
*/
package creature

import (
	"sort"
	"strconv"

	"github.com/kagimura/lorekeeper/internal/query"
	"github.com/kagimura/lorekeeper/internal/types"
)

// NoneItemID is the reserved item id whose rows always render as
// "None", even when an item with id 0 exists in the item collection.
const NoneItemID = 0

const (
	noneItemName    = "None"
	unknownItemName = "(Unknown Item)"
)

// Paths names the three logical collections drop resolution reads.
type Paths struct {
	Creature string
	Drop     string
	Item     string
}

// Resolver resolves creatures and their drop tables.
type Resolver struct {
	engine *query.Engine
	paths  Paths
}

// NewResolver creates a resolver reading from the given collections.
func NewResolver(engine *query.Engine, paths Paths) *Resolver {
	return &Resolver{engine: engine, paths: paths}
}

// ResolveDrops resolves a creature's drop tables into level brackets.
// Item display names prefer the "name_<lang>" field and fall back to
// the English name. An absent creature or drop list yields an empty
// result.
func (r *Resolver) ResolveDrops(creatureID any, lang string) []types.LevelBracket {
	entry, err := r.engine.FindByField(r.paths.Creature, "id", creatureID, false)
	if err != nil {
		return nil
	}

	edges := dropEdges(entry)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].MinLevel < edges[j].MinLevel })

	var brackets []types.LevelBracket
	for _, edge := range edges {
		groups := r.resolveGroups(edge.DropID, lang)
		if len(groups) == 0 {
			continue
		}
		brackets = append(brackets, types.LevelBracket{
			Label:    levelLabel(edge.MinLevel, edge.MaxLevel),
			MinLevel: edge.MinLevel,
			MaxLevel: edge.MaxLevel,
			MixCount: edge.MixCount,
			MaxCount: edge.MaxCount,
			Groups:   groups,
		})
	}
	return brackets
}

// dropEdges decodes the drops list of a creature entry. Malformed
// list members are skipped.
func dropEdges(entry types.Entry) []types.DropEdge {
	raw, ok := query.ResolvePath(entry, "drops")
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	edges := make([]types.DropEdge, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		row := types.Entry(m)
		edges = append(edges, types.DropEdge{
			MinLevel: intField(row, "creature_min_level"),
			MaxLevel: intField(row, "creature_max_level"),
			DropID:   intField(row, "drop_id"),
			MixCount: intField(row, "mix_drop_count"),
			MaxCount: intField(row, "max_drop_count"),
		})
	}
	return edges
}

// resolveGroups fetches the rows of one drop table and buckets them
// by group id. Groups are emitted ascending by group id, rows within
// a group descending by weight.
func (r *Resolver) resolveGroups(dropID int64, lang string) []types.DropGroup {
	rows := r.engine.FindAllByField(r.paths.Drop, "drop_id", dropID, false)

	var order []int64
	groups := make(map[int64]*types.DropGroup)
	for _, entry := range rows {
		row := dropRow(entry)
		g, ok := groups[row.GroupID]
		if !ok {
			g = &types.DropGroup{GroupID: row.GroupID}
			groups[row.GroupID] = g
			order = append(order, row.GroupID)
		}
		item := r.resolveItem(row, lang)
		g.Items = append(g.Items, item)
		g.TotalWeight += item.Weight
	}

	result := make([]types.DropGroup, 0, len(order))
	for _, groupID := range order {
		g := groups[groupID]
		if len(g.Items) == 0 {
			continue
		}
		sort.SliceStable(g.Items, func(i, j int) bool { return g.Items[i].Weight > g.Items[j].Weight })
		for i := range g.Items {
			g.Items[i].ProbabilityPercent = probabilityPercent(g.Items[i].Weight, g.TotalWeight)
		}
		result = append(result, *g)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].GroupID < result[j].GroupID })
	return result
}

func dropRow(entry types.Entry) types.DropTableRow {
	return types.DropTableRow{
		DropID:    intField(entry, "drop_id"),
		GroupID:   intField(entry, "drop_group"),
		ItemID:    intField(entry, "item_id"),
		MinAmount: intField(entry, "min_amount"),
		MaxAmount: intField(entry, "max_amount"),
		Weight:    floatField(entry, "weight"),
	}
}

// resolveItem attaches display names to one drop table row. Item id 0
// renders as "None" without a lookup; an id that cannot be resolved
// renders as "(Unknown Item)" in both name fields.
func (r *Resolver) resolveItem(row types.DropTableRow, lang string) types.ResolvedDropItem {
	item := types.ResolvedDropItem{
		ItemID:    row.ItemID,
		MinAmount: row.MinAmount,
		MaxAmount: row.MaxAmount,
		Weight:    row.Weight,
	}

	if row.ItemID == NoneItemID {
		item.Name = noneItemName
		item.NameEN = noneItemName
		return item
	}

	entry, err := r.engine.FindByField(r.paths.Item, "id", row.ItemID, false)
	if err != nil {
		item.Name = unknownItemName
		item.NameEN = unknownItemName
		return item
	}

	item.NameEN = stringField(entry, "name_en")
	item.Name = stringField(entry, "name_"+lang)
	if item.Name == "" {
		item.Name = item.NameEN
	}
	return item
}

func levelLabel(minLevel, maxLevel int64) string {
	if minLevel == maxLevel {
		return strconv.FormatInt(minLevel, 10)
	}
	return strconv.FormatInt(minLevel, 10) + "-" + strconv.FormatInt(maxLevel, 10)
}

func probabilityPercent(weight, total float64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * weight / total
}
