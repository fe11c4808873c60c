package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/cultivation-api/internal/config"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/cultivation-api/internal/handlers/cultivation/v1alpha1"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/cultivation"
	playerorch "github.com/KirkDiggler/cultivation-api/internal/orchestrators/player"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/tribulation"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/idgen"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/lock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	redisclient "github.com/KirkDiggler/cultivation-api/internal/redis"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/challenge"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player"
	"github.com/KirkDiggler/cultivation-api/internal/telemetry"
)

// stores are the storage-backed collaborators for the selected backend
type stores struct {
	players    player.Repository
	challenges challenge.Repository // nil when tribulations are off
	locker     lock.Locker
	closers    []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
}

// buildStores opens the configured backend. Redis backs players, challenges
// and locks together. SQLite holds players only, so it runs with an
// in-process locker and no tribulations. Memory keeps everything local.
func buildStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*stores, error) {
	s := &stores{}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.Connect(ctx, []string{cfg.RedisAddr}, nil)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)

		s.players, err = player.NewRedis(&player.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			s.Close()
			return nil, err
		}
		s.locker, err = lock.NewRedis(&lock.RedisConfig{Client: client, TTL: cfg.LockTTL, Wait: cfg.LockWait})
		if err != nil {
			s.Close()
			return nil, err
		}
		if cfg.TribulationEnabled {
			s.challenges, err = challenge.NewRedis(&challenge.RedisConfig{Client: client, Clock: clk})
			if err != nil {
				s.Close()
				return nil, err
			}
		}

	case config.StoreSQLite:
		repo, err := player.NewSQLite(ctx, &player.SQLiteConfig{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, repo.Close)
		s.players = repo
		s.locker = lock.NewLocal()
		if cfg.TribulationEnabled {
			slog.WarnContext(ctx, "tribulations need the redis store; running without them",
				"store", cfg.Store)
		}

	case config.StoreMemory:
		s.players = player.NewInMemory(clk)
		s.locker = lock.NewLocal()
		if cfg.TribulationEnabled {
			s.challenges = challenge.NewInMemory(clk)
		}

	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}

	return s, nil
}

// buildHandler wires the orchestrators over the stores
func buildHandler(cfg *config.Config, s *stores, clk clock.Clock) (*v1alpha1.Handler, error) {
	random := rng.New()
	bus := events.NewBus()

	var gate breakthrough.TribulationGate
	if s.challenges != nil {
		g, err := tribulation.NewGate(&tribulation.GateConfig{
			ChallengeRepo: s.challenges,
			Random:        random,
			IDGenerator:   idgen.NewUUID("trib"),
			TTL:           cfg.TribulationTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create tribulation gate")
		}
		gate = g
	}

	breakthroughSvc, err := breakthrough.NewOrchestrator(&breakthrough.Config{
		PlayerRepo: s.players,
		Locker:     s.locker,
		Random:     random,
		Gate:       gate,
		EventBus:   bus,
		Tracer:     telemetry.Tracer("cultivation-api/breakthrough"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create breakthrough orchestrator")
	}

	cultivationSvc, err := cultivation.NewOrchestrator(&cultivation.Config{
		PlayerRepo: s.players,
		Locker:     s.locker,
		Clock:      clk,
		Cooldown:   cfg.Cooldown,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cultivation orchestrator")
	}

	playerSvc, err := playerorch.NewOrchestrator(&playerorch.Config{
		PlayerRepo:  s.players,
		Random:      random,
		IDGenerator: idgen.NewUUID("player"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player orchestrator")
	}

	var tribulationSvc tribulation.Service
	if s.challenges != nil {
		tribulationSvc, err = tribulation.NewService(&tribulation.Config{
			ChallengeRepo: s.challenges,
			Breakthrough:  breakthroughSvc,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create tribulation service")
		}
	}

	subscribeAuditLog(bus)

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BreakthroughService: breakthroughSvc,
		CultivationService:  cultivationSvc,
		PlayerService:       playerSvc,
		TribulationService:  tribulationSvc,
	})
}

// subscribeAuditLog logs every published breakthrough event
func subscribeAuditLog(bus events.EventBus) {
	audit := func(ctx context.Context, e events.Event) error {
		slog.InfoContext(ctx, "breakthrough event",
			"event", e.Type(),
			"player_id", e.Source().GetID())
		return nil
	}
	for _, eventType := range []string{
		breakthrough.EventSucceeded,
		breakthrough.EventFailed,
		breakthrough.EventTribulationRequired,
	} {
		bus.SubscribeFunc(eventType, 0, audit)
	}
}
