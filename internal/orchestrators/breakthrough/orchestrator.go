// Package breakthrough advances players through the realm ladder. Each attempt
// runs under the player's exclusive scope and persists with a version check.
package breakthrough

//go:generate mockgen -destination=mock/mock_service.go -package=breakthroughmock github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/lock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player"
)

const (
	tracerName = "github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"

	// SublevelBonusRatio is the share of a realm's bonus granted by a
	// sub-level step inside that realm
	SublevelBonusRatio = 0.25
	// ResidualPercent of the spent threshold is credited back on success
	ResidualPercent = 10
	// FailurePenaltyPercent of current cultivation is lost on failure
	FailurePenaltyPercent = 20
)

// Service defines the breakthrough operations
type Service interface {
	// AttemptBreakthrough rolls the player's next breakthrough. Ineligible
	// and gated attempts are reported in the output state, not as errors.
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Aborted if the player changed underneath the attempt
	AttemptBreakthrough(ctx context.Context, input *AttemptBreakthroughInput) (*AttemptBreakthroughOutput, error)

	// GetBreakthroughInfo previews the next attempt. It never writes.
	GetBreakthroughInfo(ctx context.Context, input *GetBreakthroughInfoInput) (*GetBreakthroughInfoOutput, error)
}

// Config holds the dependencies for the breakthrough orchestrator
type Config struct {
	PlayerRepo player.Repository
	Locker     lock.Locker
	Random     rng.Source

	// Gate is optional; nil means major realms are never gated
	Gate TribulationGate
	// EventBus is optional
	EventBus events.EventBus
	// Tracer defaults to the global otel tracer
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo player.Repository
	locker     lock.Locker
	random     rng.Source
	gate       TribulationGate
	eventBus   events.EventBus
	tracer     trace.Tracer
}

// NewOrchestrator creates a new breakthrough orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		locker:     cfg.Locker,
		random:     cfg.Random,
		gate:       cfg.Gate,
		eventBus:   cfg.EventBus,
		tracer:     tracer,
	}, nil
}

func (o *orchestrator) AttemptBreakthrough(
	ctx context.Context,
	input *AttemptBreakthroughInput,
) (_ *AttemptBreakthroughOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	ctx, span := o.tracer.Start(ctx, "breakthrough.AttemptBreakthrough",
		trace.WithAttributes(
			attribute.String("player.id", input.PlayerID),
			attribute.Bool("skip_tribulation", input.SkipTribulation),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	release, err := o.locker.Acquire(ctx, lock.PlayerKey(input.PlayerID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock player %s", input.PlayerID)
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			slog.WarnContext(ctx, "failed to release player lock",
				"player_id", input.PlayerID,
				"error", rerr)
		}
	}()

	got, err := o.playerRepo.Get(ctx, player.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	p := got.Player

	out, err := o.attempt(ctx, p, input.SkipTribulation)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("breakthrough.state", string(out.State)))
	o.publish(ctx, out, p.ID)
	return out, nil
}

// attempt runs the state machine for a loaded player. The caller holds the
// player's scope.
func (o *orchestrator) attempt(ctx context.Context, p *entities.Player, skipTribulation bool) (*AttemptBreakthroughOutput, error) {
	from := positionOf(p.Realm, p.Level)
	out := &AttemptBreakthroughOutput{
		From:   from,
		To:     from,
		Player: p,
	}

	if realm.IsTerminal(p.Realm, p.Level) {
		out.State = StateIneligible
		out.Message = fmt.Sprintf("%s is the peak of cultivation; there is no further realm", from.Label)
		out.Ineligibility = &Ineligibility{
			Reason:  ReasonMaxRealm,
			Current: p.Cultivation,
		}
		return out, nil
	}

	nextID, nextLevel := realm.NextSublevel(p.Realm, p.Level)
	to := positionOf(nextID, nextLevel)
	out.To = to
	required := realm.CultivationRequired(nextID, nextLevel)

	if p.Cultivation < required {
		deficit := required - p.Cultivation
		out.State = StateIneligible
		out.Message = fmt.Sprintf("Insufficient cultivation for %s: need %d, have %d (%d short)",
			to.Label, required, p.Cultivation, deficit)
		out.Ineligibility = &Ineligibility{
			Reason:   ReasonInsufficientCultivation,
			Required: required,
			Current:  p.Cultivation,
			Deficit:  deficit,
		}
		return out, nil
	}

	rate, factors := combat.BreakthroughRate(p)
	out.Rate = rate
	out.Factors = factors

	major := nextLevel == 1
	if major && !skipTribulation {
		gating, err := o.checkGate(ctx, p.ID, nextID)
		if err != nil {
			return nil, err
		}
		if gating != nil {
			out.State = StateTribulationPending
			out.Tribulation = gating
			if gating.Created {
				out.Message = fmt.Sprintf("A heavenly tribulation gathers before %s. Survive it to break through.", to.Label)
			} else {
				out.Message = fmt.Sprintf("A tribulation for %s is already waiting to be faced.", to.Label)
			}
			return out, nil
		}
	}

	roll := o.random.Float64()
	success := roll < rate

	next := p.Clone()
	if success {
		gain := realm.Get(nextID).Bonus
		if !major {
			gain = gain.Scale(SublevelBonusRatio)
		}
		residual := required * ResidualPercent / 100

		next.Stats.ApplyBonus(gain)
		next.Stats.Restore()
		next.Cultivation = next.Cultivation - required + residual
		next.Realm = nextID
		next.Level = nextLevel

		out.State = StateSucceeded
		out.Success = true
		out.AttributeGain = gain
		out.CultivationSpent = required
		out.CultivationBonus = residual
		out.Message = fmt.Sprintf("Breakthrough succeeded! %s -> %s", from.Label, to.Label)
	} else {
		lost := next.Cultivation * FailurePenaltyPercent / 100
		next.Cultivation -= lost

		out.State = StateFailed
		out.CultivationLost = lost
		out.Message = fmt.Sprintf("Breakthrough to %s failed; %d cultivation scattered", to.Label, lost)
	}

	updated, err := o.playerRepo.Update(ctx, player.UpdateInput{Player: next})
	if err != nil {
		if errors.IsVersionConflict(err) {
			// the lock expired or was bypassed; the roll is discarded
			slog.WarnContext(ctx, "player changed while breakthrough was in flight",
				"player_id", p.ID,
				"version", p.Version)
		}
		return nil, errors.Wrapf(err, "failed to save breakthrough result")
	}
	out.Player = updated.Player

	slog.InfoContext(ctx, "breakthrough attempted",
		"player_id", p.ID,
		"from_realm", from.Realm,
		"from_level", from.Level,
		"to_realm", to.Realm,
		"to_level", to.Level,
		"rate", rate,
		"roll", roll,
		"success", success)

	return out, nil
}

// checkGate returns nil when the attempt may roll
func (o *orchestrator) checkGate(ctx context.Context, playerID string, target realm.ID) (*TribulationGating, error) {
	if o.gate == nil {
		return nil, nil
	}

	required, err := o.gate.IsRequired(ctx, target)
	if err != nil {
		slog.WarnContext(ctx, "tribulation gate unavailable, attempting without it",
			"player_id", playerID,
			"target_realm", target,
			"error", err)
		return nil, nil
	}
	if !required {
		return nil, nil
	}

	pending, err := o.gate.GetPending(ctx, playerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check pending tribulation")
	}
	if pending != nil {
		return &TribulationGating{Required: true, Challenge: pending}, nil
	}

	created, err := o.gate.Create(ctx, playerID, target)
	if err != nil {
		if !errors.IsAlreadyExists(err) {
			return nil, errors.Wrapf(err, "failed to create tribulation")
		}
		// another process opened it first
		pending, err = o.gate.GetPending(ctx, playerID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check pending tribulation")
		}
		return &TribulationGating{Required: true, Challenge: pending}, nil
	}

	slog.InfoContext(ctx, "tribulation created",
		"player_id", playerID,
		"target_realm", target,
		"challenge_id", created.ID)

	return &TribulationGating{Required: true, Created: true, Challenge: created}, nil
}

func (o *orchestrator) GetBreakthroughInfo(
	ctx context.Context,
	input *GetBreakthroughInfoInput,
) (*GetBreakthroughInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	ctx, span := o.tracer.Start(ctx, "breakthrough.GetBreakthroughInfo",
		trace.WithAttributes(attribute.String("player.id", input.PlayerID)))
	defer span.End()

	got, err := o.playerRepo.Get(ctx, player.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	p := got.Player

	rate, factors := combat.BreakthroughRate(p)
	out := &GetBreakthroughInfoOutput{
		Player:      p,
		Current:     positionOf(p.Realm, p.Level),
		Cultivation: p.Cultivation,
		Rate:        rate,
		Factors:     factors,
	}

	if realm.IsTerminal(p.Realm, p.Level) {
		out.AtMaxRealm = true
		out.Next = out.Current
		return out, nil
	}

	nextID, nextLevel := realm.NextSublevel(p.Realm, p.Level)
	out.Next = positionOf(nextID, nextLevel)
	out.MajorTransition = nextLevel == 1
	out.Required = realm.CultivationRequired(nextID, nextLevel)
	if out.Required > p.Cultivation {
		out.Deficit = out.Required - p.Cultivation
	}
	out.CanAttempt = out.Deficit == 0

	out.Gain = realm.Get(nextID).Bonus
	if !out.MajorTransition {
		out.Gain = out.Gain.Scale(SublevelBonusRatio)
	}

	if out.MajorTransition && o.gate != nil {
		required, err := o.gate.IsRequired(ctx, nextID)
		if err != nil {
			slog.WarnContext(ctx, "tribulation gate unavailable",
				"player_id", p.ID,
				"target_realm", nextID,
				"error", err)
		} else if required {
			out.TribulationRequired = true
			pending, err := o.gate.GetPending(ctx, p.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to check pending tribulation")
			}
			out.PendingChallenge = pending
		}
	}

	return out, nil
}
