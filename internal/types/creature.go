package types

// DropEdge associates a creature with a drop table over a level range.
// Decoded from the drops list of a creature entry.
type DropEdge struct {
	MinLevel int64
	MaxLevel int64
	DropID   int64
	MixCount int64
	MaxCount int64
}

// DropTableRow is one weighted item row within a drop table.
type DropTableRow struct {
	DropID    int64
	GroupID   int64
	ItemID    int64
	MinAmount int64
	MaxAmount int64
	Weight    float64
}

// ResolvedDropItem is one resolved row of a drop group.
// Name carries the requested language; NameEN is always the English name.
type ResolvedDropItem struct {
	ItemID             int64   `json:"item_id"`
	Name               string  `json:"name"`
	NameEN             string  `json:"name_en"`
	MinAmount          int64   `json:"min_amount"`
	MaxAmount          int64   `json:"max_amount"`
	Weight             float64 `json:"weight"`
	ProbabilityPercent float64 `json:"probability_percent"`
}

// DropGroup is a weighted-choice bucket of items within a level bracket.
// TotalWeight always equals the sum of member weights.
type DropGroup struct {
	GroupID     int64              `json:"group_id"`
	TotalWeight float64            `json:"total_weight"`
	Items       []ResolvedDropItem `json:"items"`
}

// LevelBracket is the presentation-ready unit combining a drop edge with its
// resolved groups. Label renders the level range ("5" or "3-7").
type LevelBracket struct {
	Label    string      `json:"label"`
	MinLevel int64       `json:"min_level"`
	MaxLevel int64       `json:"max_level"`
	MixCount int64       `json:"mix_count"`
	MaxCount int64       `json:"max_count"`
	Groups   []DropGroup `json:"groups"`
}

// CreatureRecord is the resolved presentation record for a creature.
type CreatureRecord struct {
	ID                   int64   `json:"id"`
	NameEN               string  `json:"name_en"`
	NameJA               string  `json:"name_ja"`
	MinHealth            int64   `json:"min_health"`
	MaxHealth            int64   `json:"max_health"`
	Weight               float64 `json:"weight"`
	MinExp               int64   `json:"min_exp"`
	MaxExp               int64   `json:"max_exp"`
	MinObservationPoints int64   `json:"min_observation_points"`
	MaxObservationPoints int64   `json:"max_observation_points"`
}
