package spiritroot

import (
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
)

const (
	mixedMinElements = 3
	mixedMaxElements = 5
	dualElements     = 2

	// mutatedRareChance is the share of mutated roots that roll a mutated
	// element; the rest roll a special element
	mutatedRareChance = 0.95
	// heavenlyPureChance is the share of heavenly roots that roll a basic
	// element; the rest roll a special element
	heavenlyPureChance = 0.99
)

// Factory rolls spirit roots from an injected random source
type Factory struct {
	src rng.Source
}

// NewFactory creates a factory drawing from src
func NewFactory(src rng.Source) *Factory {
	return &Factory{src: src}
}

// Generate rolls a new spirit root: tier by weight, then magnitude, then
// elements by the tier's rule, then purity.
func (f *Factory) Generate() SpiritRoot {
	quality := f.rollQuality()

	minValue, maxValue := quality.ValueRange()
	value := rng.Range(f.src, minValue, maxValue)

	elements := f.rollElements(quality)

	floor, ceiling := quality.PurityRange()
	purity := rng.Range(f.src, floor, ceiling)

	return SpiritRoot{
		Quality:  quality,
		Elements: elements,
		Value:    value,
		Purity:   purity,
	}
}

func (f *Factory) rollQuality() Quality {
	weights := make([]float64, len(Qualities))
	for i, q := range Qualities {
		weights[i] = q.Weight()
	}
	return Qualities[rng.WeightedIndex(f.src, weights)]
}

func (f *Factory) rollElements(quality Quality) []Element {
	switch quality {
	case QualityMixed:
		count := rng.Range(f.src, mixedMinElements, mixedMaxElements)
		return rng.Sample(f.src, BasicElements, count)
	case QualityDual:
		return rng.Sample(f.src, BasicElements, dualElements)
	case QualityMutated:
		if rng.Chance(f.src, mutatedRareChance) {
			return []Element{rng.Pick(f.src, MutatedElements)}
		}
		return []Element{rng.Pick(f.src, SpecialElements)}
	case QualityHeavenly:
		if rng.Chance(f.src, heavenlyPureChance) {
			return []Element{rng.Pick(f.src, BasicElements)}
		}
		return []Element{rng.Pick(f.src, SpecialElements)}
	default:
		// waste and single roots carry one basic element
		return []Element{rng.Pick(f.src, BasicElements)}
	}
}

// QualityWeight pairs a tier with its generation weight
type QualityWeight struct {
	Quality Quality
	Weight  float64
}

// Weights returns the generation weights in rank order
func Weights() []QualityWeight {
	out := make([]QualityWeight, len(Qualities))
	for i, q := range Qualities {
		out[i] = QualityWeight{Quality: q, Weight: q.Weight()}
	}
	return out
}
