// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

// PlayerBuilder provides a fluent interface for building test Player instances
type PlayerBuilder struct {
	player *entities.Player
}

// NewPlayerBuilder creates a new builder with the stats of a fresh player
func NewPlayerBuilder() *PlayerBuilder {
	now := time.Now().Unix()
	return &PlayerBuilder{
		player: &entities.Player{
			ID:    "player-test-123",
			Name:  "Han Li",
			Realm: realm.First().ID,
			Level: realm.MinLevel,
			SpiritRoot: spiritroot.SpiritRoot{
				Quality:  spiritroot.QualityMixed,
				Elements: []spiritroot.Element{spiritroot.ElementMetal, spiritroot.ElementWood, spiritroot.ElementEarth},
				Value:    20,
				Purity:   60,
			},
			Attributes: entities.CoreAttributes{
				Constitution:   15,
				SpiritualPower: 15,
				Comprehension:  10,
				Luck:           10,
				RootBone:       10,
			},
			Stats: entities.CombatStats{
				HP: 100, MaxHP: 100, MP: 100, MaxMP: 100, Attack: 10, Defense: 10,
			},
			SpiritStones: 1000,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// WithID sets the player ID
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.player.ID = id
	return b
}

// WithName sets the player name
func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.player.Name = name
	return b
}

// AtRealm places the player at a realm and sub-level
func (b *PlayerBuilder) AtRealm(id realm.ID, level int) *PlayerBuilder {
	b.player.Realm = id
	b.player.Level = level
	return b
}

// WithCultivation sets accumulated cultivation
func (b *PlayerBuilder) WithCultivation(cultivation int64) *PlayerBuilder {
	b.player.Cultivation = cultivation
	return b
}

// WithSpiritRoot replaces the spirit root
func (b *PlayerBuilder) WithSpiritRoot(root spiritroot.SpiritRoot) *PlayerBuilder {
	b.player.SpiritRoot = root
	return b
}

// WithSingleRoot gives the player a single-element root of the given purity
func (b *PlayerBuilder) WithSingleRoot(element spiritroot.Element, purity int) *PlayerBuilder {
	b.player.SpiritRoot = spiritroot.SpiritRoot{
		Quality:  spiritroot.QualitySingle,
		Elements: []spiritroot.Element{element},
		Value:    85,
		Purity:   purity,
	}
	return b
}

// WithAttributes replaces the core attributes
func (b *PlayerBuilder) WithAttributes(attrs entities.CoreAttributes) *PlayerBuilder {
	b.player.Attributes = attrs
	return b
}

// WithStats replaces the combat stats
func (b *PlayerBuilder) WithStats(stats entities.CombatStats) *PlayerBuilder {
	b.player.Stats = stats
	return b
}

// WithVersion sets the stored version
func (b *PlayerBuilder) WithVersion(version int64) *PlayerBuilder {
	b.player.Version = version
	return b
}

// Build returns a copy of the built player
func (b *PlayerBuilder) Build() *entities.Player {
	return b.player.Clone()
}
