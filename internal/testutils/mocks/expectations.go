// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	playerrepo "github.com/KirkDiggler/cultivation-api/internal/repositories/player"
	playerrepomock "github.com/KirkDiggler/cultivation-api/internal/repositories/player/mock"
)

// ExpectPlayerGet sets up a mock expectation for loading a player
func ExpectPlayerGet(
	ctx context.Context,
	mockRepo *playerrepomock.MockRepository,
	p *entities.Player,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, playerrepo.GetInput{ID: p.ID}).
		Return(&playerrepo.GetOutput{Player: p.Clone()}, nil)
}

// ExpectPlayerNotFound sets up a mock expectation for a missing player
func ExpectPlayerNotFound(ctx context.Context, mockRepo *playerrepomock.MockRepository, playerID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, playerrepo.GetInput{ID: playerID}).
		Return(nil, errors.NotFoundf("player %s not found", playerID))
}

// ExpectPlayerUpdate sets up a mock expectation for saving a player. The
// stored copy comes back with the version bumped, as a real store does.
func ExpectPlayerUpdate(ctx context.Context, mockRepo *playerrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.UpdateInput) (*playerrepo.UpdateOutput, error) {
			saved := input.Player.Clone()
			saved.Version++
			return &playerrepo.UpdateOutput{Player: saved}, nil
		})
}

// ExpectPlayerUpdateConflict sets up a mock expectation for a stale write
func ExpectPlayerUpdateConflict(ctx context.Context, mockRepo *playerrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil, errors.Aborted("player was modified concurrently"))
}
