package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

func TestCombatStatsApplyBonusAndRestore(t *testing.T) {
	stats := entities.CombatStats{HP: 20, MaxHP: 100, MP: 5, MaxMP: 100, Attack: 10, Defense: 10}

	stats.ApplyBonus(realm.Bonus{MaxHP: 100, MaxMP: 100, Attack: 10, Defense: 10})
	stats.Restore()

	assert.Equal(t, entities.CombatStats{HP: 200, MaxHP: 200, MP: 200, MaxMP: 200, Attack: 20, Defense: 20}, stats)
}

func TestPlayerCloneIsDeep(t *testing.T) {
	p := &entities.Player{
		ID:    "p-1",
		Realm: realm.GoldenCore,
		Level: 2,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  spiritroot.QualityDual,
			Elements: []spiritroot.Element{spiritroot.ElementFire, spiritroot.ElementWood},
		},
	}

	clone := p.Clone()
	clone.SpiritRoot.Elements[0] = spiritroot.ElementIce
	clone.Level = 3

	assert.Equal(t, spiritroot.ElementFire, p.SpiritRoot.Elements[0])
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, "Golden Core Mid", p.RealmLabel())
	assert.Nil(t, (*entities.Player)(nil).Clone())
}

func TestEquipmentEnhancement(t *testing.T) {
	e := entities.Equipment{Attack: 10, Defense: 15, EnhanceLevel: 3}

	assert.Equal(t, int64(13), e.TotalAttack())
	assert.Equal(t, int64(19), e.TotalDefense())
}

func TestChallengeIsPending(t *testing.T) {
	assert.True(t, (&entities.Challenge{Status: entities.ChallengePending}).IsPending())
	assert.False(t, (&entities.Challenge{Status: entities.ChallengePassed}).IsPending())
	assert.False(t, (*entities.Challenge)(nil).IsPending())
}
