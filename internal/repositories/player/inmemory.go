package player

import (
	"context"
	"sync"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
)

// InMemoryRepository keeps players in a map. Used for local runs and tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*record
	clock   clock.Clock
}

// NewInMemory creates an empty in-memory repository. A nil clock uses the real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		players: make(map[string]*record),
		clock:   c,
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[input.Player.ID]; exists {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	created := input.Player.Clone()
	now := r.clock.Now().Unix()
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now
	r.players[created.ID] = toRecord(created.Clone())

	return &CreateOutput{Player: created}, nil
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.players[input.ID]
	if !exists {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &GetOutput{Player: rec.toEntity().Clone()}, nil
}

func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := input.Player.ID
	existing, exists := r.players[id]
	if !exists {
		return nil, errors.NotFoundf("player with ID %s not found", id)
	}
	if existing.Version != input.Player.Version {
		return nil, errors.VersionConflict(id, input.Player.Version, existing.Version)
	}

	updated := input.Player.Clone()
	updated.Version = existing.Version + 1
	updated.UpdatedAt = r.clock.Now().Unix()
	r.players[id] = toRecord(updated.Clone())

	return &UpdateOutput{Player: updated}, nil
}
