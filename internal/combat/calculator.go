// Package combat computes power scores, damage, cultivation gain and
// breakthrough odds. Nothing here fails: unknown realms and tiers fall back to
// the lowest realm and to zero modifiers.
package combat

import (
	"math"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

// Tuning constants
const (
	BaseRealmPower       = 1000
	AttributePowerFactor = 5
	SublevelPowerStep    = 0.1

	BaseCultivationGain     = 50
	ComprehensionGainFactor = 0.02
	RealmGainFactor         = 0.5

	AttackerGapBonus   = 0.10
	DefenderGapPenalty = 0.05
	DamageSpreadMin    = 0.9
	DamageSpreadMax    = 1.1
	DefenseFactor      = 0.5

	SkillAttackFactor      = 0.5
	SkillLevelStep         = 0.2
	SkillProficiencyDivide = 100.0

	BaseCritRate      = 0.05
	CritRatePerLuck   = 0.005
	CritMultiplier    = 2.0
	BaseDodgeRate     = 0.05
	DodgeRatePerSpeed = 0.005
	MaxDodgeRate      = 0.3
)

// Calculator holds the random source used by the rolling formulas
type Calculator struct {
	src rng.Source
}

// NewCalculator creates a calculator drawing from src
func NewCalculator(src rng.Source) *Calculator {
	return &Calculator{src: src}
}

// realmMultiplier doubles with every realm
func realmMultiplier(index int) float64 {
	return math.Pow(2, float64(index))
}

// Power scores a player. Every realm doubles both the realm and the
// attribute component; sub-levels add 10% each to the realm component.
func Power(p *entities.Player, equipmentScore int64) int64 {
	r := realm.Get(p.Realm)
	mult := realmMultiplier(r.Index)
	level := realm.ClampLevel(p.Level)

	realmPower := BaseRealmPower * mult * (1 + SublevelPowerStep*float64(level-1))
	attributePower := float64(p.Attributes.Total()) * mult * AttributePowerFactor

	return int64(realmPower+attributePower) + equipmentScore
}

// SkillDamage is the raw damage a skill adds for an attacker with the given
// attack: (base + attack/2) scaled by skill level and proficiency.
func SkillDamage(skill *entities.Skill, attack int64) float64 {
	if skill == nil {
		return 0
	}
	level := max(skill.Level, 1)
	levelMult := 1 + float64(level-1)*SkillLevelStep
	proficiencyMult := 1 + float64(skill.Proficiency)/SkillProficiencyDivide
	return (float64(skill.BaseDamage) + float64(attack)*SkillAttackFactor) * levelMult * proficiencyMult
}

// SkillMatchesRoot reports whether a skill gains the attacker's element bonus.
// Only single-element roots match; multi-element roots never do.
func SkillMatchesRoot(skill *entities.Skill, root spiritroot.SpiritRoot) bool {
	if skill == nil || !skill.Element.Valid() {
		return false
	}
	element, ok := root.SingleElement()
	return ok && element == skill.Element
}

// Damage resolves one hit. A nil skill is a plain attack. The result is
// never below 1.
func (c *Calculator) Damage(attacker, defender *entities.Player, skill *entities.Skill, multiplier float64) int64 {
	damage := float64(attacker.Stats.Attack) - DefenseFactor*float64(defender.Stats.Defense)

	if skill != nil {
		damage += SkillDamage(skill, attacker.Stats.Attack)
		if SkillMatchesRoot(skill, attacker.SpiritRoot) {
			damage *= 1 + skill.Element.SkillBonus()
		}
	}

	damage *= multiplier
	damage *= RealmGapModifier(realm.Get(attacker.Realm).Index, realm.Get(defender.Realm).Index)
	damage *= rng.Uniform(c.src, DamageSpreadMin, DamageSpreadMax)

	return max(1, int64(damage))
}

// RealmGapModifier is +10% per realm the attacker is above the defender and
// -5% per realm below.
func RealmGapModifier(attackerIndex, defenderIndex int) float64 {
	diff := attackerIndex - defenderIndex
	switch {
	case diff > 0:
		return 1 + float64(diff)*AttackerGapBonus
	case diff < 0:
		return 1 + float64(diff)*DefenderGapPenalty
	default:
		return 1
	}
}

// CultivationGain is the cultivation earned by one cultivation session
func CultivationGain(p *entities.Player) int64 {
	bonuses := spiritroot.CalculateBonuses(p.SpiritRoot)
	comprehension := ComprehensionGainFactor * float64(p.Attributes.Comprehension)
	realmFactor := 1 + RealmGainFactor*float64(realm.Get(p.Realm).Index)

	return int64(BaseCultivationGain * (1 + bonuses.Cultivation + comprehension) * realmFactor)
}

// CriticalHit rolls a crit at 5% + 0.5% per luck; crits deal double damage
func (c *Calculator) CriticalHit(damage int64, luck int) (int64, bool) {
	rate := BaseCritRate + CritRatePerLuck*float64(luck)
	if rng.Chance(c.src, rate) {
		return int64(float64(damage) * CritMultiplier), true
	}
	return damage, false
}

// DodgeRate is 5% + 0.5% per point the defender is faster, within [0, 30%]
func DodgeRate(attackerSpeed, defenderSpeed int) float64 {
	rate := BaseDodgeRate + DodgeRatePerSpeed*float64(defenderSpeed-attackerSpeed)
	return math.Max(0, math.Min(MaxDodgeRate, rate))
}

// Dodge rolls whether the defender evades the attack
func (c *Calculator) Dodge(attackerSpeed, defenderSpeed int) bool {
	return rng.Chance(c.src, DodgeRate(attackerSpeed, defenderSpeed))
}
