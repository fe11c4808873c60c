package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

func playerAt(id realm.ID, level int, quality spiritroot.Quality, purity int) *entities.Player {
	return &entities.Player{
		Realm: id,
		Level: level,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  quality,
			Elements: []spiritroot.Element{spiritroot.ElementMetal},
			Purity:   purity,
		},
	}
}

func TestBreakthroughRate(t *testing.T) {
	testCases := []struct {
		name      string
		player    *entities.Player
		want      float64
		wantEarly bool
	}{
		{name: "fresh single root", player: playerAt(realm.QiRefining, 1, spiritroot.QualitySingle, 72), want: 0.65},
		{name: "early attempt at nascent soul", player: playerAt(realm.NascentSoul, 2, spiritroot.QualityDual, 60), want: 0.125, wantEarly: true},
		{name: "late attempt at nascent soul", player: playerAt(realm.NascentSoul, 3, spiritroot.QualityDual, 60), want: 0.10},
		{name: "early attempt below nascent soul", player: playerAt(realm.GoldenCore, 2, spiritroot.QualityDual, 60), want: 0.25},
		{name: "clamped low", player: playerAt(realm.HunyuanSage, 4, spiritroot.QualityWaste, 50), want: 0.05},
		{name: "best case", player: playerAt(realm.QiRefining, 1, spiritroot.QualityHeavenly, 95), want: 0.95},
		{name: "unknown quality", player: playerAt(realm.QiRefining, 1, spiritroot.QualityUnknown, 0), want: 0.50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate, factors := combat.BreakthroughRate(tc.player)
			assert.InDelta(t, tc.want, rate, 1e-9)
			assert.Equal(t, rate, factors.Final)
			assert.Equal(t, tc.wantEarly, factors.EarlyAttempt)
		})
	}
}

func TestBreakthroughRateBreakdown(t *testing.T) {
	_, factors := combat.BreakthroughRate(playerAt(realm.QiRefining, 1, spiritroot.QualitySingle, 72))

	assert.Equal(t, map[string]string{
		"base_rate":     "50%",
		"level_penalty": "-0%",
		"realm_penalty": "-0%",
		"spirit_bonus":  "+10%",
		"purity_bonus":  "+5%",
		"final_rate":    "65.0%",
	}, factors.Breakdown())
}

func TestBreakthroughRateAlwaysClamped(t *testing.T) {
	src := rng.New()
	qualities := append([]spiritroot.Quality{spiritroot.QualityUnknown}, spiritroot.Qualities...)
	realms := realm.All()

	for i := 0; i < 5000; i++ {
		p := playerAt(
			realms[src.IntN(len(realms))].ID,
			rng.Range(src, -2, 8),
			qualities[src.IntN(len(qualities))],
			rng.Range(src, 0, 100),
		)

		rate, factors := combat.BreakthroughRate(p)
		require.GreaterOrEqual(t, rate, combat.MinBreakthroughRate)
		require.LessOrEqual(t, rate, combat.MaxBreakthroughRate)
		require.Equal(t, combat.ClampRate(factors.Unclamped), rate)
	}
}
