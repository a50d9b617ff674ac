// internal/creature/record.go

package creature

import (
	"github.com/kagimura/lorekeeper/internal/types"
)

// ResolveCreature looks up a creature by id and decodes it into a
// presentation record. Fields missing from the entry decode to their
// zero value.
func (r *Resolver) ResolveCreature(creatureID any) (types.CreatureRecord, error) {
	entry, err := r.engine.FindByField(r.paths.Creature, "id", creatureID, false)
	if err != nil {
		return types.CreatureRecord{}, err
	}
	return types.CreatureRecord{
		ID:                   intField(entry, "id"),
		NameEN:               stringField(entry, "name_en"),
		NameJA:               stringField(entry, "name_ja"),
		MinHealth:            intField(entry, "min_health"),
		MaxHealth:            intField(entry, "max_health"),
		Weight:               floatField(entry, "weight"),
		MinExp:               intField(entry, "min_exp"),
		MaxExp:               intField(entry, "max_exp"),
		MinObservationPoints: intField(entry, "min_observation_points"),
		MaxObservationPoints: intField(entry, "max_observation_points"),
	}, nil
}
