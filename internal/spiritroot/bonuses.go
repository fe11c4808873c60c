package spiritroot

import "fmt"

// Bonuses is the gameplay effect of a spirit root
type Bonuses struct {
	// Cultivation is the additive cultivation-rate bonus, purity applied
	Cultivation float64
	// Breakthrough is the tier's additive breakthrough-rate modifier
	Breakthrough float64
	Combat       map[CombatStat]float64
	Profession   map[Profession]float64
	// Skill is the damage bonus for skills matching the primary element
	Skill float64
}

// CalculateBonuses composes the tier modifiers with the primary element's
// bonuses. Purity scales the cultivation bonus only.
func CalculateBonuses(root SpiritRoot) Bonuses {
	primary := elementConfigs[root.Primary()]

	b := Bonuses{
		Cultivation:  root.Quality.CultivationModifier() + primary.cultivationBonus,
		Breakthrough: root.Quality.BreakthroughModifier(),
		Combat:       make(map[CombatStat]float64, len(primary.combat)),
		Profession:   make(map[Profession]float64, len(primary.profession)),
		Skill:        primary.skillBonus,
	}
	for stat, v := range primary.combat {
		b.Combat[stat] = v
	}
	for prof, v := range primary.profession {
		b.Profession[prof] = v
	}

	b.Cultivation *= PurityMultiplier(root.Purity)
	return b
}

// PurityMultiplier scales the cultivation bonus: x2.0 at 90+, x1.5 at 80+
func PurityMultiplier(purity int) float64 {
	switch {
	case purity >= 90:
		return 2.0
	case purity >= 80:
		return 1.5
	default:
		return 1.0
	}
}

// PurityBreakthroughBonus is the breakthrough-rate bonus granted by purity
func PurityBreakthroughBonus(purity int) float64 {
	switch {
	case purity >= 90:
		return 0.15
	case purity >= 80:
		return 0.10
	case purity >= 70:
		return 0.05
	default:
		return 0
	}
}

// Describe returns a one-line description of the root's character
func Describe(root SpiritRoot) string {
	trait := root.Primary().Description()
	if trait == "" {
		trait = "an unknown nature"
	}
	return fmt.Sprintf("%s (%s, purity %d%%): %s. %s",
		root.Quality.Label(), root.Label(), root.Purity, trait, root.Quality.Description())
}
