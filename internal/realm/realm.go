// Package realm holds the static cultivation ladder: the ordered realms, the
// cultivation each sub-level costs, and the attribute bundle a realm grants.
//
// Every lookup is pure and total. An unknown realm ID resolves to the lowest
// realm and an out-of-range level is clamped into 1..4, so callers reading
// stale or hand-edited records never see a panic or an error from here.
package realm

// ID is the stable storage key of a realm
type ID string

// Realm IDs in ladder order
const (
	QiRefining               ID = "qi_refining"
	FoundationEstablishment  ID = "foundation_establishment"
	GoldenCore               ID = "golden_core"
	NascentSoul              ID = "nascent_soul"
	SpiritSevering           ID = "spirit_severing"
	VoidRefining             ID = "void_refining"
	BodyIntegration          ID = "body_integration"
	Mahayana                 ID = "mahayana"
	TribulationTranscendence ID = "tribulation_transcendence"
	EarthImmortal            ID = "earth_immortal"
	HeavenImmortal           ID = "heaven_immortal"
	GoldenImmortal           ID = "golden_immortal"
	DaluoGoldenImmortal      ID = "daluo_golden_immortal"
	QuasiSage                ID = "quasi_sage"
	HunyuanSage              ID = "hunyuan_sage"
)

// Stage groups realms into broad tiers
type Stage string

// Stages from lowest to highest
const (
	StageMortal     Stage = "mortal"
	StageCultivator Stage = "cultivator"
	StagePerfected  Stage = "perfected"
	StageImmortal   Stage = "immortal"
	StageSupreme    Stage = "supreme"
)

// Sub-level bounds. Every realm has exactly four sub-levels.
const (
	MinLevel       = 1
	MaxLevel       = 4
	LevelsPerRealm = MaxLevel - MinLevel + 1
)

// Bonus is the attribute bundle granted on entering a realm
type Bonus struct {
	MaxHP   int64
	MaxMP   int64
	Attack  int64
	Defense int64
}

// Scale returns the bundle multiplied by ratio, truncating each attribute
// toward zero.
func (b Bonus) Scale(ratio float64) Bonus {
	return Bonus{
		MaxHP:   int64(float64(b.MaxHP) * ratio),
		MaxMP:   int64(float64(b.MaxMP) * ratio),
		Attack:  int64(float64(b.Attack) * ratio),
		Defense: int64(float64(b.Defense) * ratio),
	}
}

// IsZero reports whether the bundle grants nothing
func (b Bonus) IsZero() bool {
	return b == Bonus{}
}

// Realm is a single rung of the ladder
type Realm struct {
	Index      int
	ID         ID
	Name       string
	Stage      Stage
	Thresholds [LevelsPerRealm]int64
	Bonus      Bonus
	// LevelNames overrides DefaultLevelNames when set
	LevelNames *[LevelsPerRealm]string
}

// DefaultLevelNames are used by realms that declare no names of their own
var DefaultLevelNames = [LevelsPerRealm]string{"Early", "Mid", "Late", "Peak"}

// Threshold returns the cultivation required to reach the given sub-level
func (r Realm) Threshold(level int) int64 {
	return r.Thresholds[ClampLevel(level)-MinLevel]
}

// LevelName returns the display name of the given sub-level
func (r Realm) LevelName(level int) string {
	names := DefaultLevelNames
	if r.LevelNames != nil {
		names = *r.LevelNames
	}
	return names[ClampLevel(level)-MinLevel]
}

// ClampLevel forces level into MinLevel..MaxLevel
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
