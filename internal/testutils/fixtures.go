package testutils

import (
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/testutils/builders"
)

// Progression stages for testing
const (
	StageFresh            = "fresh"
	StageReadyForSublevel = "ready_for_sublevel"
	StageReadyForMajor    = "ready_for_major"
	StagePeak             = "peak"

	// TestPlayerName is the default player name for test fixtures
	TestPlayerName = "Han Li"
)

// CreateTestPlayer creates a freshly created player with sensible defaults
func CreateTestPlayer(playerID string) *entities.Player {
	return builders.NewPlayerBuilder().
		WithID(playerID).
		WithName(TestPlayerName).
		Build()
}

// CreateTestPlayerAtStage creates a player at a point on the ladder
func CreateTestPlayerAtStage(playerID string, stage string) *entities.Player {
	b := builders.NewPlayerBuilder().WithID(playerID).WithName(TestPlayerName)

	switch stage {
	case StageReadyForSublevel:
		b.WithCultivation(requiredForNext(realm.First().ID, realm.MinLevel))
	case StageReadyForMajor:
		first := realm.First().ID
		b.AtRealm(first, realm.MaxLevel).
			WithCultivation(requiredForNext(first, realm.MaxLevel))
	case StagePeak:
		b.AtRealm(realm.Last().ID, realm.MaxLevel)
	}

	return b.Build()
}

func requiredForNext(id realm.ID, level int) int64 {
	nextID, nextLevel := realm.NextSublevel(id, level)
	return realm.CultivationRequired(nextID, nextLevel)
}
