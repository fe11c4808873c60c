package tribulation

import (
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
)

// Spec describes the tribulation guarding entry into a realm
type Spec struct {
	Target     realm.ID
	Level      int
	Kinds      []entities.TribulationKind
	BaseDamage int64
	Waves      int
	Difficulty entities.Difficulty
}

var difficultyMultipliers = map[entities.Difficulty]float64{
	entities.DifficultyEasy:   0.7,
	entities.DifficultyNormal: 1.0,
	entities.DifficultyHard:   1.5,
	entities.DifficultyHell:   2.0,
}

var kindMultipliers = map[entities.TribulationKind]float64{
	entities.TribulationThunder:    1.0,
	entities.TribulationFire:       1.1,
	entities.TribulationHeartDemon: 0.8,
	entities.TribulationWind:       0.9,
	entities.TribulationIce:        0.95,
	entities.TribulationMixed:      1.3,
}

// Realms past Tribulation Transcendence have already crossed their
// tribulation and are absent here.
var specs = map[realm.ID]Spec{
	realm.FoundationEstablishment: {
		Level: 1, BaseDamage: 100, Waves: 3, Difficulty: entities.DifficultyEasy,
		Kinds: []entities.TribulationKind{entities.TribulationThunder},
	},
	realm.GoldenCore: {
		Level: 2, BaseDamage: 200, Waves: 4, Difficulty: entities.DifficultyNormal,
		Kinds: []entities.TribulationKind{entities.TribulationThunder, entities.TribulationFire},
	},
	realm.NascentSoul: {
		Level: 3, BaseDamage: 400, Waves: 5, Difficulty: entities.DifficultyNormal,
		Kinds: []entities.TribulationKind{
			entities.TribulationThunder, entities.TribulationFire, entities.TribulationWind,
		},
	},
	realm.SpiritSevering: {
		Level: 4, BaseDamage: 800, Waves: 6, Difficulty: entities.DifficultyHard,
		Kinds: []entities.TribulationKind{
			entities.TribulationThunder, entities.TribulationFire, entities.TribulationWind,
			entities.TribulationHeartDemon,
		},
	},
	realm.VoidRefining: {
		Level: 5, BaseDamage: 1600, Waves: 7, Difficulty: entities.DifficultyHard,
		Kinds: []entities.TribulationKind{
			entities.TribulationThunder, entities.TribulationFire, entities.TribulationWind,
			entities.TribulationIce, entities.TribulationHeartDemon,
		},
	},
	realm.BodyIntegration: {
		Level: 6, BaseDamage: 3200, Waves: 8, Difficulty: entities.DifficultyHard,
		Kinds: []entities.TribulationKind{entities.TribulationMixed},
	},
	realm.Mahayana: {
		Level: 7, BaseDamage: 6400, Waves: 9, Difficulty: entities.DifficultyHell,
		Kinds: []entities.TribulationKind{entities.TribulationMixed},
	},
	realm.TribulationTranscendence: {
		Level: 8, BaseDamage: 12800, Waves: 9, Difficulty: entities.DifficultyHell,
		Kinds: []entities.TribulationKind{entities.TribulationMixed},
	},
}

// SpecFor returns the tribulation guarding target, if any
func SpecFor(target realm.ID) (Spec, bool) {
	s, ok := specs[target]
	if !ok {
		return Spec{}, false
	}
	s.Target = target
	return s, true
}

// DamagePerWave is base damage scaled by difficulty and kind, truncated
func DamagePerWave(s Spec, kind entities.TribulationKind) int64 {
	d, ok := difficultyMultipliers[s.Difficulty]
	if !ok {
		d = 1.0
	}
	k, ok := kindMultipliers[kind]
	if !ok {
		k = 1.0
	}
	return int64(float64(s.BaseDamage) * d * k)
}
