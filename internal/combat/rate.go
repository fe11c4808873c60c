package combat

import (
	"fmt"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

// Breakthrough rate tuning
const (
	BaseBreakthroughRate = 0.50
	MinBreakthroughRate  = 0.05
	MaxBreakthroughRate  = 0.95

	LevelPenaltyStep = 0.05
	RealmPenaltyStep = 0.10

	// Players at or beyond this realm index who attempt a breakthrough
	// before sub-level 3 take a x1.5 level penalty
	EarlyAttemptRealmIndex = 3
	EarlyAttemptLevel      = 3
	EarlyAttemptPenalty    = 1.5
)

// RateFactors itemizes a breakthrough rate
type RateFactors struct {
	Base         float64
	LevelPenalty float64
	RealmPenalty float64
	SpiritBonus  float64
	PurityBonus  float64
	// EarlyAttempt is set when the x1.5 level penalty applied
	EarlyAttempt bool
	// Unclamped is the sum of the terms before clamping
	Unclamped float64
	Final     float64
}

// Breakdown renders each term for display
func (f RateFactors) Breakdown() map[string]string {
	purity := "0%"
	if f.PurityBonus > 0 {
		purity = fmt.Sprintf("+%.0f%%", f.PurityBonus*100)
	}
	return map[string]string{
		"base_rate":     fmt.Sprintf("%.0f%%", f.Base*100),
		"level_penalty": fmt.Sprintf("-%.0f%%", f.LevelPenalty*100),
		"realm_penalty": fmt.Sprintf("-%.0f%%", f.RealmPenalty*100),
		"spirit_bonus":  fmt.Sprintf("%+.0f%%", f.SpiritBonus*100),
		"purity_bonus":  purity,
		"final_rate":    fmt.Sprintf("%.1f%%", f.Final*100),
	}
}

// BreakthroughRate is the chance the player's next breakthrough succeeds,
// clamped to [5%, 95%], with its itemized terms.
func BreakthroughRate(p *entities.Player) (float64, RateFactors) {
	index := realm.Get(p.Realm).Index
	level := realm.ClampLevel(p.Level)

	f := RateFactors{
		Base:         BaseBreakthroughRate,
		LevelPenalty: LevelPenaltyStep * float64(level-1),
		RealmPenalty: RealmPenaltyStep * float64(index),
		SpiritBonus:  p.SpiritRoot.Quality.BreakthroughModifier(),
		PurityBonus:  spiritroot.PurityBreakthroughBonus(p.SpiritRoot.Purity),
	}
	if level < EarlyAttemptLevel && index >= EarlyAttemptRealmIndex {
		f.LevelPenalty *= EarlyAttemptPenalty
		f.EarlyAttempt = true
	}

	f.Unclamped = f.Base - f.LevelPenalty - f.RealmPenalty + f.SpiritBonus + f.PurityBonus
	f.Final = ClampRate(f.Unclamped)
	return f.Final, f
}

// ClampRate forces a rate into [MinBreakthroughRate, MaxBreakthroughRate]
func ClampRate(rate float64) float64 {
	return max(MinBreakthroughRate, min(MaxBreakthroughRate, rate))
}
