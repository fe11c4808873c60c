package player

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/cultivation-api/internal/redis"
)

const playerKeyPrefix = "player:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	created := input.Player.Clone()
	now := r.clock.Now().Unix()
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	data, err := json.Marshal(toRecord(created))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	key := playerKeyPrefix + created.ID
	ok, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", created.ID)
	}

	return &CreateOutput{Player: created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player data")
	}

	return &GetOutput{Player: rec.toEntity()}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	id := input.Player.ID
	key := playerKeyPrefix + id

	updated := input.Player.Clone()
	updated.Version = input.Player.Version + 1
	updated.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(toRecord(updated))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("player with ID %s not found", id)
			}
			return errors.Wrapf(err, "failed to get player")
		}

		var existing record
		if err := json.Unmarshal([]byte(result), &existing); err != nil {
			return errors.Wrapf(err, "failed to unmarshal existing player data")
		}
		if existing.Version != input.Player.Version {
			return errors.VersionConflict(id, input.Player.Version, existing.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if err == redis.TxFailedErr {
			slog.WarnContext(ctx, "player changed during update transaction",
				"player_id", id,
				"version", input.Player.Version)
			return nil, errors.VersionConflict(id, input.Player.Version, -1)
		}
		if errors.GetCode(err) != errors.CodeInternal {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Player: updated}, nil
}
