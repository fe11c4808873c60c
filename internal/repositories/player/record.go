package player

import (
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

const (
	// Error messages
	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

// record is the stored JSON shape of a player
type record struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Realm            string                `json:"realm"`
	Level            int                   `json:"level"`
	Cultivation      int64                 `json:"cultivation"`
	SpiritRoot       spiritroot.SpiritRoot `json:"spirit_root"`
	Constitution     int                   `json:"constitution"`
	SpiritualPower   int                   `json:"spiritual_power"`
	Comprehension    int                   `json:"comprehension"`
	Luck             int                   `json:"luck"`
	RootBone         int                   `json:"root_bone"`
	HP               int64                 `json:"hp"`
	MaxHP            int64                 `json:"max_hp"`
	MP               int64                 `json:"mp"`
	MaxMP            int64                 `json:"max_mp"`
	Attack           int64                 `json:"attack"`
	Defense          int64                 `json:"defense"`
	SpiritStones     int64                 `json:"spirit_stones"`
	LastCultivatedAt int64                 `json:"last_cultivated_at,omitempty"`
	Version          int64                 `json:"version"`
	CreatedAt        int64                 `json:"created_at"`
	UpdatedAt        int64                 `json:"updated_at"`
}

func toRecord(p *entities.Player) *record {
	return &record{
		ID:               p.ID,
		Name:             p.Name,
		Realm:            string(p.Realm),
		Level:            p.Level,
		Cultivation:      p.Cultivation,
		SpiritRoot:       p.SpiritRoot,
		Constitution:     p.Attributes.Constitution,
		SpiritualPower:   p.Attributes.SpiritualPower,
		Comprehension:    p.Attributes.Comprehension,
		Luck:             p.Attributes.Luck,
		RootBone:         p.Attributes.RootBone,
		HP:               p.Stats.HP,
		MaxHP:            p.Stats.MaxHP,
		MP:               p.Stats.MP,
		MaxMP:            p.Stats.MaxMP,
		Attack:           p.Stats.Attack,
		Defense:          p.Stats.Defense,
		SpiritStones:     p.SpiritStones,
		LastCultivatedAt: p.LastCultivatedAt,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *record) toEntity() *entities.Player {
	return &entities.Player{
		ID:          r.ID,
		Name:        r.Name,
		Realm:       realm.ID(r.Realm),
		Level:       r.Level,
		Cultivation: r.Cultivation,
		SpiritRoot:  r.SpiritRoot,
		Attributes: entities.CoreAttributes{
			Constitution:   r.Constitution,
			SpiritualPower: r.SpiritualPower,
			Comprehension:  r.Comprehension,
			Luck:           r.Luck,
			RootBone:       r.RootBone,
		},
		Stats: entities.CombatStats{
			HP:      r.HP,
			MaxHP:   r.MaxHP,
			MP:      r.MP,
			MaxMP:   r.MaxMP,
			Attack:  r.Attack,
			Defense: r.Defense,
		},
		SpiritStones:     r.SpiritStones,
		LastCultivatedAt: r.LastCultivatedAt,
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func validatePlayer(p *entities.Player) error {
	if p == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", p.Level, realm.MinLevel, realm.MaxLevel, vb)
	if p.Cultivation < 0 {
		vb.InvalidField("cultivation", "must not be negative")
	}
	return vb.Build()
}
