package breakthrough

//go:generate mockgen -destination=mock/mock_gate.go -package=breakthroughmock github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough TribulationGate

import (
	"context"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
)

// TribulationGate decides whether entering a realm needs a passed tribulation
type TribulationGate interface {
	// IsRequired reports whether entering target is gated. An error means
	// the gate cannot answer and the attempt proceeds ungated.
	IsRequired(ctx context.Context, target realm.ID) (bool, error)

	// GetPending returns the player's open challenge, or nil when there is none
	GetPending(ctx context.Context, playerID string) (*entities.Challenge, error)

	// Create opens a challenge for the player to enter target
	// Returns errors.AlreadyExists if one is already pending
	Create(ctx context.Context, playerID string, target realm.ID) (*entities.Challenge, error)
}
