package combat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

type CalculatorTestSuite struct {
	suite.Suite
	attacker *entities.Player
	defender *entities.Player
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) SetupTest() {
	s.attacker = &entities.Player{
		ID:    "attacker",
		Realm: realm.QiRefining,
		Level: 1,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  spiritroot.QualitySingle,
			Elements: []spiritroot.Element{spiritroot.ElementFire},
			Purity:   72,
		},
		Stats: entities.CombatStats{Attack: 100, Defense: 10},
	}
	s.defender = &entities.Player{
		ID:    "defender",
		Realm: realm.QiRefining,
		Level: 1,
		Stats: entities.CombatStats{Attack: 10, Defense: 41},
	}
}

func (s *CalculatorTestSuite) TestPower() {
	p := &entities.Player{
		Realm:      realm.QiRefining,
		Level:      1,
		Attributes: entities.CoreAttributes{Constitution: 10, SpiritualPower: 10, Comprehension: 10, Luck: 10, RootBone: 10},
	}
	s.Assert().Equal(int64(1250), combat.Power(p, 0))

	p.Realm = realm.FoundationEstablishment
	p.Level = 4
	p.Attributes.RootBone = 20
	s.Assert().Equal(int64(3350), combat.Power(p, 150))
}

func (s *CalculatorTestSuite) TestPowerDoublesPerRealm() {
	p := &entities.Player{Level: 1, Attributes: entities.CoreAttributes{Luck: 10}}
	var prev int64
	for _, r := range realm.All() {
		p.Realm = r.ID
		power := combat.Power(p, 0)
		if prev > 0 {
			s.Assert().Equal(prev*2, power, "realm %s", r.ID)
		}
		prev = power
	}
}

func (s *CalculatorTestSuite) TestDamagePlainAttack() {
	calc := combat.NewCalculator(rng.Fixed(0.5))
	s.Assert().Equal(int64(79), calc.Damage(s.attacker, s.defender, nil, 1.0))

	calc = combat.NewCalculator(rng.Fixed(0))
	s.Assert().Equal(int64(71), calc.Damage(s.attacker, s.defender, nil, 1.0))
}

func (s *CalculatorTestSuite) TestDamageMatchingSkill() {
	skill := &entities.Skill{Element: spiritroot.ElementFire, Level: 2, Proficiency: 50, BaseDamage: 50}
	calc := combat.NewCalculator(rng.Fixed(0.5))

	s.Assert().Equal(int64(363), calc.Damage(s.attacker, s.defender, skill, 1.0))

	s.attacker.SpiritRoot.Elements = []spiritroot.Element{spiritroot.ElementFire, spiritroot.ElementWood}
	s.Assert().Equal(int64(259), calc.Damage(s.attacker, s.defender, skill, 1.0))
}

func (s *CalculatorTestSuite) TestDamageRealmGap() {
	calc := combat.NewCalculator(rng.Fixed(0.5))

	s.attacker.Realm = realm.GoldenCore
	s.Assert().Equal(int64(95), calc.Damage(s.attacker, s.defender, nil, 1.0))

	s.attacker.Realm = realm.QiRefining
	s.defender.Realm = realm.NascentSoul
	s.Assert().Equal(int64(67), calc.Damage(s.attacker, s.defender, nil, 1.0))
}

func (s *CalculatorTestSuite) TestDamageNeverBelowOne() {
	s.attacker.Stats.Attack = 1
	s.defender.Stats.Defense = 500
	calc := combat.NewCalculator(rng.Fixed(0.5))

	s.Assert().Equal(int64(1), calc.Damage(s.attacker, s.defender, nil, 1.0))
	s.Assert().Equal(int64(1), calc.Damage(s.attacker, s.defender, nil, 0))
}

func (s *CalculatorTestSuite) TestRealmGapModifier() {
	s.Assert().InDelta(1.0, combat.RealmGapModifier(4, 4), 1e-9)
	s.Assert().InDelta(1.3, combat.RealmGapModifier(4, 1), 1e-9)
	s.Assert().InDelta(0.85, combat.RealmGapModifier(1, 4), 1e-9)
}

func (s *CalculatorTestSuite) TestCultivationGain() {
	p := &entities.Player{
		Realm: realm.FoundationEstablishment,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  spiritroot.QualitySingle,
			Elements: []spiritroot.Element{spiritroot.ElementFire},
			Purity:   80,
		},
		Attributes: entities.CoreAttributes{Comprehension: 10},
	}
	// 50 * (1 + (0.20+0.18)*1.5 + 0.20) * 1.5
	s.Assert().Equal(int64(132), combat.CultivationGain(p))
}

func (s *CalculatorTestSuite) TestCultivationGainUnknownRoot() {
	p := &entities.Player{
		Realm:      realm.FoundationEstablishment,
		Attributes: entities.CoreAttributes{Comprehension: 7},
	}
	s.Assert().Equal(int64(85), combat.CultivationGain(p))
}

func (s *CalculatorTestSuite) TestEquipmentScore() {
	items := []entities.Equipment{
		{Quality: entities.EquipmentSpirit, Attack: 10, Defense: 15, EnhanceLevel: 3, HPBonus: 100, MPBonus: 55, Equipped: true},
		{Quality: entities.EquipmentChaos, Attack: 1000, Equipped: false},
		{Quality: entities.EquipmentQuality("legendary"), Attack: 7, Equipped: true},
	}
	s.Assert().Equal(int64(77), combat.EquipmentScore(items))
	s.Assert().Equal(int64(0), combat.EquipmentScore(nil))
}

func (s *CalculatorTestSuite) TestCriticalHit() {
	damage, crit := combat.NewCalculator(rng.Fixed(0.09)).CriticalHit(100, 10)
	s.Assert().True(crit)
	s.Assert().Equal(int64(200), damage)

	damage, crit = combat.NewCalculator(rng.Fixed(0.11)).CriticalHit(100, 10)
	s.Assert().False(crit)
	s.Assert().Equal(int64(100), damage)
}

func (s *CalculatorTestSuite) TestDodge() {
	s.Assert().InDelta(0.05, combat.DodgeRate(10, 10), 1e-9)
	s.Assert().InDelta(0.25, combat.DodgeRate(10, 50), 1e-9)
	s.Assert().InDelta(0.30, combat.DodgeRate(10, 100), 1e-9)
	s.Assert().InDelta(0.0, combat.DodgeRate(100, 10), 1e-9)

	s.Assert().True(combat.NewCalculator(rng.Fixed(0.2)).Dodge(10, 50))
	s.Assert().False(combat.NewCalculator(rng.Fixed(0.2)).Dodge(10, 10))
}
