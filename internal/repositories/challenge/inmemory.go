package challenge

import (
	"context"
	"sync"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
)

// InMemoryRepository keeps pending challenges in a map keyed by player
type InMemoryRepository struct {
	mu      sync.Mutex
	pending map[string]*entities.Challenge
	clock   clock.Clock
}

// NewInMemory creates an empty in-memory repository. A nil clock uses the real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		pending: make(map[string]*entities.Challenge),
		clock:   c,
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateChallenge(input.Challenge); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Challenge.PlayerID); ok {
		return nil, errors.AlreadyExistsf("player %s already has a pending tribulation", input.Challenge.PlayerID).
			WithMeta(errors.MetaPlayerID, input.Challenge.PlayerID)
	}

	created := stamp(input.Challenge, r.clock.Now(), input.TTL)
	stored := *created
	r.pending[created.PlayerID] = &stored

	return &CreateOutput{Challenge: created}, nil
}

func (r *InMemoryRepository) GetPending(_ context.Context, input GetPendingInput) (*GetPendingOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.live(input.PlayerID)
	if !ok {
		return nil, errors.NotFoundf("no pending tribulation for player %s", input.PlayerID)
	}
	out := *c
	return &GetPendingOutput{Challenge: &out}, nil
}

func (r *InMemoryRepository) Close(_ context.Context, input CloseInput) (*CloseOutput, error) {
	if err := validateClose(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.live(input.PlayerID)
	if !ok {
		return nil, errors.NotFoundf("no pending tribulation for player %s", input.PlayerID)
	}
	if c.ID != input.ChallengeID {
		return nil, errors.NotFoundf("challenge %s is not pending for player %s", input.ChallengeID, input.PlayerID).
			WithMeta(errors.MetaPendingChallengeID, c.ID)
	}

	delete(r.pending, input.PlayerID)
	out := *c
	out.Status = input.Status
	return &CloseOutput{Challenge: &out}, nil
}

// live returns the player's unexpired challenge, evicting an expired one.
// Callers hold mu.
func (r *InMemoryRepository) live(playerID string) (*entities.Challenge, bool) {
	c, ok := r.pending[playerID]
	if !ok {
		return nil, false
	}
	if r.clock.Now().Unix() >= c.ExpiresAt {
		delete(r.pending, playerID)
		return nil, false
	}
	return c, true
}
