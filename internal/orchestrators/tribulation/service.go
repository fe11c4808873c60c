// Package tribulation gates major-realm breakthroughs behind heavenly
// tribulations and resolves them once the player has faced one.
package tribulation

//go:generate mockgen -destination=mock/mock_service.go -package=tribulationmock github.com/KirkDiggler/cultivation-api/internal/orchestrators/tribulation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/challenge"
)

// Service defines the tribulation operations
type Service interface {
	// GetTribulation returns the player's pending challenge, nil when none
	GetTribulation(ctx context.Context, input *GetTribulationInput) (*GetTribulationOutput, error)

	// Resolve closes the pending challenge with the external verdict. A pass
	// retries the breakthrough without the gate.
	// Returns errors.NotFound if the player has no pending challenge
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// GetTribulationInput is the request for GetTribulation
type GetTribulationInput struct {
	PlayerID string
}

// GetTribulationOutput is the response for GetTribulation
type GetTribulationOutput struct {
	Challenge *entities.Challenge
	Spec      *Spec
}

// ResolveInput is the request for Resolve
type ResolveInput struct {
	PlayerID string
	// ChallengeID is optional; when set it must match the pending challenge
	ChallengeID string
	Passed      bool
}

// ResolveOutput is the response for Resolve
type ResolveOutput struct {
	Challenge *entities.Challenge
	// Breakthrough is set when the tribulation was passed
	Breakthrough *breakthrough.AttemptBreakthroughOutput
}

// Config holds the dependencies for the tribulation service
type Config struct {
	ChallengeRepo challenge.Repository
	Breakthrough  breakthrough.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.ChallengeRepo == nil {
		vb.RequiredField("ChallengeRepo")
	}
	if c.Breakthrough == nil {
		vb.RequiredField("Breakthrough")
	}

	return vb.Build()
}

type service struct {
	repo         challenge.Repository
	breakthrough breakthrough.Service
}

// NewService creates a tribulation service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		repo:         cfg.ChallengeRepo,
		breakthrough: cfg.Breakthrough,
	}, nil
}

func (s *service) GetTribulation(ctx context.Context, input *GetTribulationInput) (*GetTribulationOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := s.repo.GetPending(ctx, challenge.GetPendingInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetTribulationOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get pending tribulation")
	}

	result := &GetTribulationOutput{Challenge: out.Challenge}
	if spec, ok := SpecFor(out.Challenge.TargetRealm); ok {
		result.Spec = &spec
	}
	return result, nil
}

func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	challengeID := input.ChallengeID
	if challengeID == "" {
		pending, err := s.repo.GetPending(ctx, challenge.GetPendingInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get pending tribulation")
		}
		challengeID = pending.Challenge.ID
	}

	status := entities.ChallengeFailed
	if input.Passed {
		status = entities.ChallengePassed
	}

	// Closing first makes a verdict single-use
	closed, err := s.repo.Close(ctx, challenge.CloseInput{
		PlayerID:    input.PlayerID,
		ChallengeID: challengeID,
		Status:      status,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to close tribulation")
	}

	slog.InfoContext(ctx, "tribulation resolved",
		"player_id", input.PlayerID,
		"challenge_id", challengeID,
		"target_realm", closed.Challenge.TargetRealm,
		"passed", input.Passed)

	out := &ResolveOutput{Challenge: closed.Challenge}
	if !input.Passed {
		return out, nil
	}

	attempt, err := s.breakthrough.AttemptBreakthrough(ctx, &breakthrough.AttemptBreakthroughInput{
		PlayerID:        input.PlayerID,
		SkipTribulation: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to break through after tribulation")
	}
	out.Breakthrough = attempt
	return out, nil
}
