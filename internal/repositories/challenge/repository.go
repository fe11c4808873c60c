// Package challenge stores the single pending tribulation challenge of each player
package challenge

//go:generate mockgen -destination=mock/mock_repository.go -package=challengemock github.com/KirkDiggler/cultivation-api/internal/repositories/challenge Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
)

// Repository persists pending tribulation challenges. A player has at most
// one pending challenge; it disappears when closed or when its TTL runs out.
type Repository interface {
	// Create stores a pending challenge for Challenge.PlayerID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the player already has a pending challenge
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// GetPending returns the player's pending challenge
	// Returns errors.NotFound if there is none or it has expired
	GetPending(ctx context.Context, input GetPendingInput) (*GetPendingOutput, error)

	// Close removes the pending challenge with the given ID and returns it
	// stamped with the final status
	// Returns errors.NotFound if no pending challenge matches
	Close(ctx context.Context, input CloseInput) (*CloseOutput, error)
}

// CreateInput defines the input for creating a challenge
type CreateInput struct {
	Challenge *entities.Challenge
	// TTL overrides the default lifetime of a pending challenge
	TTL time.Duration
}

// CreateOutput defines the output for creating a challenge
type CreateOutput struct {
	Challenge *entities.Challenge
}

// GetPendingInput defines the input for looking up a pending challenge
type GetPendingInput struct {
	PlayerID string
}

// GetPendingOutput defines the output for looking up a pending challenge
type GetPendingOutput struct {
	Challenge *entities.Challenge
}

// CloseInput defines the input for closing a challenge
type CloseInput struct {
	PlayerID    string
	ChallengeID string
	Status      entities.ChallengeStatus
}

// CloseOutput defines the output for closing a challenge
type CloseOutput struct {
	Challenge *entities.Challenge
}
