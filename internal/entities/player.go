package entities

import (
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

// Player is a cultivator's persisted progression record
type Player struct {
	ID   string
	Name string

	Realm       realm.ID
	Level       int
	Cultivation int64
	SpiritRoot  spiritroot.SpiritRoot

	Attributes CoreAttributes
	Stats      CombatStats

	SpiritStones     int64
	LastCultivatedAt int64

	// Version is bumped by the store on every write and checked on update
	Version   int64
	CreatedAt int64
	UpdatedAt int64
}

// CoreAttributes are rolled at creation and drive the calculators
type CoreAttributes struct {
	Constitution   int
	SpiritualPower int
	Comprehension  int
	Luck           int
	RootBone       int
}

// Total sums the five attributes
func (a CoreAttributes) Total() int {
	return a.Constitution + a.SpiritualPower + a.Comprehension + a.Luck + a.RootBone
}

// CombatStats are running totals grown by realm bonuses
type CombatStats struct {
	HP      int64
	MaxHP   int64
	MP      int64
	MaxMP   int64
	Attack  int64
	Defense int64
}

// ApplyBonus adds a realm bonus bundle to the running totals
func (s *CombatStats) ApplyBonus(b realm.Bonus) {
	s.MaxHP += b.MaxHP
	s.MaxMP += b.MaxMP
	s.Attack += b.Attack
	s.Defense += b.Defense
}

// Restore fills HP and MP to their maximums
func (s *CombatStats) Restore() {
	s.HP = s.MaxHP
	s.MP = s.MaxMP
}

// RealmLabel is the display label of the player's position, e.g. "Golden Core Mid"
func (p *Player) RealmLabel() string {
	return realm.Label(p.Realm, p.Level)
}

// Clone returns a deep copy safe to mutate
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	if p.SpiritRoot.Elements != nil {
		out.SpiritRoot.Elements = append([]spiritroot.Element(nil), p.SpiritRoot.Elements...)
	}
	return &out
}
