// Package cultivation implements the timed cultivate action that feeds
// breakthroughs.
package cultivation

//go:generate mockgen -destination=mock/mock_service.go -package=cultivationmock github.com/KirkDiggler/cultivation-api/internal/orchestrators/cultivation Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/lock"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player"
)

// DefaultCooldown is the wait between cultivation sessions
const DefaultCooldown = time.Hour

// Service defines the cultivation operations
type Service interface {
	// Cultivate adds one session of cultivation to the player
	// Returns errors.FailedPrecondition while the cooldown runs, with
	// remaining_seconds in the error metadata
	Cultivate(ctx context.Context, input *CultivateInput) (*CultivateOutput, error)

	// GetCultivationInfo reports cooldown and the next session's gain
	GetCultivationInfo(ctx context.Context, input *GetCultivationInfoInput) (*GetCultivationInfoOutput, error)
}

// CultivateInput is the request for Cultivate
type CultivateInput struct {
	PlayerID string
}

// CultivateOutput is the response for Cultivate
type CultivateOutput struct {
	Player *entities.Player
	Gain   int64

	// NextRealm and Required describe the next breakthrough; both are
	// empty at the top of the ladder
	NextRealm       string
	Required        int64
	CanBreakthrough bool

	NextAvailableAt time.Time
}

// GetCultivationInfoInput is the request for GetCultivationInfo
type GetCultivationInfoInput struct {
	PlayerID string
}

// GetCultivationInfoOutput is the response for GetCultivationInfo
type GetCultivationInfoOutput struct {
	Player            *entities.Player
	CooldownRemaining time.Duration
	CanCultivate      bool
	NextGain          int64

	NextRealm       string
	Required        int64
	CanBreakthrough bool
}

// Config holds the dependencies for the cultivation orchestrator
type Config struct {
	PlayerRepo player.Repository
	Locker     lock.Locker
	Clock      clock.Clock
	// Cooldown between sessions; zero uses DefaultCooldown
	Cooldown time.Duration
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
	if c.Cooldown < 0 {
		vb.InvalidField("Cooldown", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo player.Repository
	locker     lock.Locker
	clock      clock.Clock
	cooldown   time.Duration
}

// NewOrchestrator creates a new cultivation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	cooldown := cfg.Cooldown
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		locker:     cfg.Locker,
		clock:      c,
		cooldown:   cooldown,
	}, nil
}

func (o *orchestrator) Cultivate(ctx context.Context, input *CultivateInput) (*CultivateOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

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

	now := o.clock.Now()
	if remaining := o.remaining(p, now); remaining > 0 {
		return nil, errors.CooldownNotReady(p.ID, remaining)
	}

	gain := combat.CultivationGain(p)
	next := p.Clone()
	next.Cultivation += gain
	next.LastCultivatedAt = now.Unix()

	updated, err := o.playerRepo.Update(ctx, player.UpdateInput{Player: next})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save cultivation")
	}

	out := &CultivateOutput{
		Player:          updated.Player,
		Gain:            gain,
		NextAvailableAt: now.Add(o.cooldown),
	}
	out.NextRealm, out.Required, out.CanBreakthrough = nextBreakthrough(updated.Player)

	slog.InfoContext(ctx, "player cultivated",
		"player_id", p.ID,
		"gain", gain,
		"cultivation", updated.Player.Cultivation,
		"can_breakthrough", out.CanBreakthrough)

	return out, nil
}

func (o *orchestrator) GetCultivationInfo(ctx context.Context, input *GetCultivationInfoInput) (*GetCultivationInfoOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	got, err := o.playerRepo.Get(ctx, player.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	p := got.Player

	remaining := o.remaining(p, o.clock.Now())
	out := &GetCultivationInfoOutput{
		Player:            p,
		CooldownRemaining: remaining,
		CanCultivate:      remaining == 0,
		NextGain:          combat.CultivationGain(p),
	}
	out.NextRealm, out.Required, out.CanBreakthrough = nextBreakthrough(p)
	return out, nil
}

// remaining is the cooldown left at now; zero when ready
func (o *orchestrator) remaining(p *entities.Player, now time.Time) time.Duration {
	if p.LastCultivatedAt == 0 {
		return 0
	}
	readyAt := time.Unix(p.LastCultivatedAt, 0).Add(o.cooldown)
	if !now.Before(readyAt) {
		return 0
	}
	return readyAt.Sub(now)
}

func nextBreakthrough(p *entities.Player) (string, int64, bool) {
	if realm.IsTerminal(p.Realm, p.Level) {
		return "", 0, false
	}
	id, level := realm.NextSublevel(p.Realm, p.Level)
	required := realm.CultivationRequired(id, level)
	return realm.Label(id, level), required, p.Cultivation >= required
}
