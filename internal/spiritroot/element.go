package spiritroot

import "strings"

// Element is an elemental affinity tag. The zero value is unknown and grants
// no bonuses.
type Element int

// Elements grouped as the five basic, five mutated and three special tags
const (
	ElementUnknown Element = iota
	ElementMetal
	ElementWood
	ElementWater
	ElementFire
	ElementEarth
	ElementWind
	ElementThunder
	ElementIce
	ElementLight
	ElementDark
	ElementChaos
	ElementTime
	ElementSpace
)

// ElementGroup classifies elements by rarity
type ElementGroup string

// Element groups
const (
	GroupBasic   ElementGroup = "basic"
	GroupMutated ElementGroup = "mutated"
	GroupSpecial ElementGroup = "special"
)

// Element lists by group
var (
	BasicElements   = []Element{ElementMetal, ElementWood, ElementWater, ElementFire, ElementEarth}
	MutatedElements = []Element{ElementWind, ElementThunder, ElementIce, ElementLight, ElementDark}
	SpecialElements = []Element{ElementChaos, ElementTime, ElementSpace}
)

// CombatStat names a stat an element boosts in combat
type CombatStat string

// Combat stats
const (
	StatAttack          CombatStat = "attack"
	StatDefense         CombatStat = "defense"
	StatMaxHP           CombatStat = "max_hp"
	StatMaxMP           CombatStat = "max_mp"
	StatHPRegen         CombatStat = "hp_regen"
	StatCritRate        CombatStat = "crit_rate"
	StatCritDamage      CombatStat = "crit_damage"
	StatSpeed           CombatStat = "speed"
	StatDodge           CombatStat = "dodge"
	StatControlDuration CombatStat = "control_duration"
	StatHealing         CombatStat = "healing"
	StatPurify          CombatStat = "purify"
	StatDebuffEffect    CombatStat = "debuff_effect"
	StatAllStats        CombatStat = "all_stats"
)

// Profession names a crafting profession an element favors
type Profession string

// Professions
const (
	ProfessionAlchemist       Profession = "alchemist"
	ProfessionArtificer       Profession = "artificer"
	ProfessionFormationMaster Profession = "formation_master"
	ProfessionTalismanMaster  Profession = "talisman_master"
)

type elementConfig struct {
	name             string
	label            string
	group            ElementGroup
	cultivationBonus float64
	combat           map[CombatStat]float64
	profession       map[Profession]float64
	skillBonus       float64
	description      string
}

var elementConfigs = map[Element]elementConfig{
	ElementMetal: {
		name: "metal", label: "Metal", group: GroupBasic, cultivationBonus: 0.15,
		combat:      map[CombatStat]float64{StatAttack: 0.30, StatDefense: 0.10},
		profession:  map[Profession]float64{ProfessionArtificer: 0.20},
		skillBonus:  0.30,
		description: "sharp, unyielding and austere",
	},
	ElementWood: {
		name: "wood", label: "Wood", group: GroupBasic, cultivationBonus: 0.10,
		combat:      map[CombatStat]float64{StatHPRegen: 0.50, StatDefense: 0.20},
		profession:  map[Profession]float64{ProfessionAlchemist: 0.20},
		skillBonus:  0.30,
		description: "vital, healing and resilient",
	},
	ElementWater: {
		name: "water", label: "Water", group: GroupBasic, cultivationBonus: 0.12,
		combat:      map[CombatStat]float64{StatDefense: 0.30, StatMaxMP: 0.20},
		profession:  map[Profession]float64{ProfessionFormationMaster: 0.15},
		skillBonus:  0.30,
		description: "supple, flowing and accommodating",
	},
	ElementFire: {
		name: "fire", label: "Fire", group: GroupBasic, cultivationBonus: 0.18,
		combat:      map[CombatStat]float64{StatAttack: 0.40, StatCritRate: 0.10},
		profession:  map[Profession]float64{ProfessionAlchemist: 0.25, ProfessionArtificer: 0.15},
		skillBonus:  0.40,
		description: "violent, scorching and destructive",
	},
	ElementEarth: {
		name: "earth", label: "Earth", group: GroupBasic, cultivationBonus: 0.08,
		combat:      map[CombatStat]float64{StatDefense: 0.40, StatMaxHP: 0.30},
		profession:  map[Profession]float64{ProfessionFormationMaster: 0.20},
		skillBonus:  0.30,
		description: "heavy, steady and protective",
	},
	ElementWind: {
		name: "wind", label: "Wind", group: GroupMutated, cultivationBonus: 0.20,
		combat:      map[CombatStat]float64{StatSpeed: 0.40, StatDodge: 0.30},
		profession:  map[Profession]float64{ProfessionTalismanMaster: 0.25},
		skillBonus:  0.35,
		description: "swift, elusive and keen",
	},
	ElementThunder: {
		name: "thunder", label: "Thunder", group: GroupMutated, cultivationBonus: 0.25,
		combat:      map[CombatStat]float64{StatAttack: 0.50, StatCritDamage: 0.30},
		profession:  map[Profession]float64{ProfessionTalismanMaster: 0.30},
		skillBonus:  0.50,
		description: "furious, ruinous and sudden",
	},
	ElementIce: {
		name: "ice", label: "Ice", group: GroupMutated, cultivationBonus: 0.22,
		combat:      map[CombatStat]float64{StatAttack: 0.35, StatControlDuration: 0.50},
		profession:  map[Profession]float64{ProfessionArtificer: 0.20},
		skillBonus:  0.45,
		description: "cold, congealing and sealing",
	},
	ElementLight: {
		name: "light", label: "Light", group: GroupMutated, cultivationBonus: 0.20,
		combat:      map[CombatStat]float64{StatHealing: 0.60, StatPurify: 0.40},
		profession:  map[Profession]float64{ProfessionAlchemist: 0.30},
		skillBonus:  0.40,
		description: "holy, healing and cleansing",
	},
	ElementDark: {
		name: "dark", label: "Dark", group: GroupMutated, cultivationBonus: 0.18,
		combat:      map[CombatStat]float64{StatAttack: 0.45, StatDebuffEffect: 0.40},
		profession:  map[Profession]float64{ProfessionTalismanMaster: 0.25},
		skillBonus:  0.45,
		description: "eerie, corrosive and cursed; prone to qi deviation",
	},
	ElementChaos: {
		name: "chaos", label: "Chaos", group: GroupSpecial, cultivationBonus: 0.50,
		combat: map[CombatStat]float64{StatAllStats: 0.20},
		profession: map[Profession]float64{
			ProfessionAlchemist:       0.15,
			ProfessionArtificer:       0.15,
			ProfessionFormationMaster: 0.15,
			ProfessionTalismanMaster:  0.15,
		},
		skillBonus:  0.20,
		description: "the five phases in primordial chaos, one in ten thousand",
	},
	ElementTime: {
		name: "time", label: "Time", group: GroupSpecial, cultivationBonus: 1.00,
		combat:      map[CombatStat]float64{StatAllStats: 0.30},
		profession:  map[Profession]float64{},
		skillBonus:  0.50,
		description: "legendary, able to bend time",
	},
	ElementSpace: {
		name: "space", label: "Space", group: GroupSpecial, cultivationBonus: 1.00,
		combat:      map[CombatStat]float64{StatDodge: 0.50, StatAllStats: 0.30},
		profession:  map[Profession]float64{ProfessionFormationMaster: 2.00},
		skillBonus:  0.50,
		description: "legendary, able to fold space",
	},
}

var elementsByName = func() map[string]Element {
	m := make(map[string]Element, len(elementConfigs))
	for e, cfg := range elementConfigs {
		m[cfg.name] = e
	}
	return m
}()

// Valid reports whether e is a known element
func (e Element) Valid() bool {
	_, ok := elementConfigs[e]
	return ok
}

// String returns the storage name of the element
func (e Element) String() string {
	if cfg, ok := elementConfigs[e]; ok {
		return cfg.name
	}
	return "unknown"
}

// Label returns the display name of the element
func (e Element) Label() string {
	if cfg, ok := elementConfigs[e]; ok {
		return cfg.label
	}
	return "Unknown"
}

// Group returns the rarity group of the element
func (e Element) Group() ElementGroup {
	return elementConfigs[e].group
}

// CultivationBonus is the element's additive cultivation-rate bonus
func (e Element) CultivationBonus() float64 {
	return elementConfigs[e].cultivationBonus
}

// SkillBonus is the damage bonus for skills matching the element
func (e Element) SkillBonus() float64 {
	return elementConfigs[e].skillBonus
}

// Description is a short flavor text for the element
func (e Element) Description() string {
	return elementConfigs[e].description
}

// MarshalText implements encoding.TextMarshaler
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to ElementUnknown.
func (e *Element) UnmarshalText(text []byte) error {
	*e = ParseElement(string(text))
	return nil
}

// ParseElement returns the element with the given storage name
func ParseElement(name string) Element {
	return elementsByName[strings.ToLower(strings.TrimSpace(name))]
}

// ParseElements splits a "+"-joined type string such as "metal+wood"
func ParseElements(s string) []Element {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, typeSeparator)
	out := make([]Element, 0, len(parts))
	for _, p := range parts {
		out = append(out, ParseElement(p))
	}
	return out
}
