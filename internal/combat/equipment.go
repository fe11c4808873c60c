package combat

import "github.com/KirkDiggler/cultivation-api/internal/entities"

var equipmentMultipliers = map[entities.EquipmentQuality]float64{
	entities.EquipmentMortal:   1.0,
	entities.EquipmentSpirit:   1.5,
	entities.EquipmentTreasure: 2.0,
	entities.EquipmentImmortal: 3.0,
	entities.EquipmentDivine:   5.0,
	entities.EquipmentDao:      8.0,
	entities.EquipmentChaos:    12.0,
}

// EquipmentMultiplier returns the score multiplier of a grade, 1.0 if unknown
func EquipmentMultiplier(q entities.EquipmentQuality) float64 {
	if m, ok := equipmentMultipliers[q]; ok {
		return m
	}
	return 1.0
}

// EquipmentScore sums the scores of equipped items. Each item scores
// attack + defense + hp/10 + mp/10, scaled by its grade.
func EquipmentScore(items []entities.Equipment) int64 {
	var total int64
	for _, item := range items {
		if !item.Equipped {
			continue
		}
		base := item.TotalAttack() + item.TotalDefense() + item.HPBonus/10 + item.MPBonus/10
		total += int64(float64(base) * EquipmentMultiplier(item.Quality))
	}
	return total
}
