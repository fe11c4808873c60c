package tribulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/idgen"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/challenge"
)

// GateConfig holds the dependencies for the tribulation gate
type GateConfig struct {
	ChallengeRepo challenge.Repository
	Random        rng.Source
	IDGenerator   idgen.Generator
	// TTL is how long a challenge stays open; zero uses challenge.DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *GateConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.ChallengeRepo == nil {
		vb.RequiredField("ChallengeRepo")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

// Gate decides which realm entries need a tribulation and opens challenges
type Gate struct {
	repo   challenge.Repository
	random rng.Source
	idGen  idgen.Generator
	ttl    time.Duration
}

// Ensure Gate satisfies the breakthrough collaborator
var _ breakthrough.TribulationGate = (*Gate)(nil)

// NewGate creates a tribulation gate
func NewGate(cfg *GateConfig) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = challenge.DefaultTTL
	}

	return &Gate{
		repo:   cfg.ChallengeRepo,
		random: cfg.Random,
		idGen:  cfg.IDGenerator,
		ttl:    ttl,
	}, nil
}

// IsRequired reports whether entering target needs a tribulation
func (g *Gate) IsRequired(_ context.Context, target realm.ID) (bool, error) {
	_, ok := SpecFor(target)
	return ok, nil
}

// GetPending returns the player's open challenge or nil
func (g *Gate) GetPending(ctx context.Context, playerID string) (*entities.Challenge, error) {
	out, err := g.repo.GetPending(ctx, challenge.GetPendingInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get pending tribulation")
	}
	return out.Challenge, nil
}

// Create draws a tribulation kind for target and stores the challenge
func (g *Gate) Create(ctx context.Context, playerID string, target realm.ID) (*entities.Challenge, error) {
	spec, ok := SpecFor(target)
	if !ok {
		return nil, errors.FailedPreconditionf("realm %s has no tribulation", target).
			WithMeta(errors.MetaTargetRealm, string(target))
	}

	kind := rng.Pick(g.random, spec.Kinds)
	c := &entities.Challenge{
		ID:               g.idGen.Generate(),
		PlayerID:         playerID,
		TargetRealm:      target,
		Kind:             kind,
		TribulationLevel: spec.Level,
		Difficulty:       spec.Difficulty,
		Waves:            spec.Waves,
		DamagePerWave:    DamagePerWave(spec, kind),
	}

	out, err := g.repo.Create(ctx, challenge.CreateInput{Challenge: c, TTL: g.ttl})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store tribulation")
	}

	slog.InfoContext(ctx, "tribulation opened",
		"player_id", playerID,
		"target_realm", target,
		"kind", kind,
		"waves", spec.Waves,
		"damage_per_wave", out.Challenge.DamagePerWave)

	return out.Challenge, nil
}
