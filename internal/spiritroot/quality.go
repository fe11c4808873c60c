package spiritroot

// Quality is the rarity tier of a spirit root. The zero value is an unknown
// tier and carries no modifiers.
type Quality int

// Quality tiers from weakest to strongest
const (
	QualityUnknown Quality = iota
	QualityWaste
	QualityMixed
	QualityDual
	QualitySingle
	QualityMutated
	QualityHeavenly
)

type qualityConfig struct {
	name                 string
	label                string
	weight               float64
	minValue             int
	maxValue             int
	cultivationModifier  float64
	breakthroughModifier float64
	purityFloor          int
	description          string
}

var qualityConfigs = map[Quality]qualityConfig{
	QualityWaste: {
		name: "waste", label: "Waste Root", weight: 0.05,
		minValue: 0, maxValue: 10,
		cultivationModifier: -0.50, breakthroughModifier: -0.30,
		purityFloor: 50,
		description: "barely able to cultivate; seek a fortuitous encounter to improve it",
	},
	QualityMixed: {
		name: "mixed", label: "Mixed Root", weight: 0.35,
		minValue: 11, maxValue: 30,
		cultivationModifier: -0.20, breakthroughModifier: -0.10,
		purityFloor: 55,
		description: "scattered affinities that resist specialization but learn broadly",
	},
	QualityDual: {
		name: "dual", label: "Dual Root", weight: 0.40,
		minValue: 31, maxValue: 60,
		cultivationModifier: 0, breakthroughModifier: 0,
		purityFloor: 60,
		description: "balanced growth with a high ceiling",
	},
	QualitySingle: {
		name: "single", label: "Single Root", weight: 0.15,
		minValue: 61, maxValue: 80,
		cultivationModifier: 0.20, breakthroughModifier: 0.10,
		purityFloor: 70,
		description: "focused growth destined for great achievements",
	},
	QualityMutated: {
		name: "mutated", label: "Mutated Root", weight: 0.04,
		minValue: 61, maxValue: 90,
		cultivationModifier: 0.25, breakthroughModifier: 0.15,
		purityFloor: 75,
		description: "exceedingly rare and formidable in battle",
	},
	QualityHeavenly: {
		name: "heavenly", label: "Heavenly Root", weight: 0.01,
		minValue: 91, maxValue: 100,
		cultivationModifier: 0.50, breakthroughModifier: 0.30,
		purityFloor: 85,
		description: "a flawless root seen once in ten thousand years",
	},
}

// Qualities lists every known tier in rank order
var Qualities = []Quality{
	QualityWaste,
	QualityMixed,
	QualityDual,
	QualitySingle,
	QualityMutated,
	QualityHeavenly,
}

// Valid reports whether q is one of the six known tiers
func (q Quality) Valid() bool {
	_, ok := qualityConfigs[q]
	return ok
}

// String returns the storage name of the tier
func (q Quality) String() string {
	if cfg, ok := qualityConfigs[q]; ok {
		return cfg.name
	}
	return "unknown"
}

// Label returns the display name of the tier
func (q Quality) Label() string {
	if cfg, ok := qualityConfigs[q]; ok {
		return cfg.label
	}
	return "Unknown Root"
}

// Weight is the tier's share of random generation
func (q Quality) Weight() float64 {
	return qualityConfigs[q].weight
}

// ValueRange returns the inclusive bounds of the tier's magnitude
func (q Quality) ValueRange() (int, int) {
	cfg := qualityConfigs[q]
	return cfg.minValue, cfg.maxValue
}

// CultivationModifier is the tier's additive cultivation-rate modifier
func (q Quality) CultivationModifier() float64 {
	return qualityConfigs[q].cultivationModifier
}

// BreakthroughModifier is the tier's additive breakthrough-rate modifier
func (q Quality) BreakthroughModifier() float64 {
	return qualityConfigs[q].breakthroughModifier
}

// PurityRange returns the inclusive purity bounds the tier can roll.
// Unknown tiers use the lowest floor.
func (q Quality) PurityRange() (int, int) {
	floor := qualityConfigs[q].purityFloor
	if floor == 0 {
		floor = qualityConfigs[QualityWaste].purityFloor
	}
	return floor, min(100, floor+15)
}

// Description is a short flavor text for the tier
func (q Quality) Description() string {
	return qualityConfigs[q].description
}

// MarshalText implements encoding.TextMarshaler
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to QualityUnknown.
func (q *Quality) UnmarshalText(text []byte) error {
	*q = ParseQuality(string(text))
	return nil
}

// ParseQuality returns the tier with the given storage name
func ParseQuality(name string) Quality {
	for _, candidate := range Qualities {
		if qualityConfigs[candidate].name == name {
			return candidate
		}
	}
	return QualityUnknown
}
