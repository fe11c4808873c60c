package challenge

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/cultivation-api/internal/redis"
)

// Key pattern: tribulation:pending:{player_id}
const pendingKeyPrefix = "tribulation:pending:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed challenge repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

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
	if err := validateChallenge(input.Challenge); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	created := stamp(input.Challenge, r.clock.Now(), ttl)

	data, err := json.Marshal(toRecord(created))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal challenge")
	}

	// NX keeps the first challenge when two attempts race past GetPending
	ok, err := r.client.SetNX(ctx, pendingKeyPrefix+created.PlayerID, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store challenge in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("player %s already has a pending tribulation", created.PlayerID).
			WithMeta(errors.MetaPlayerID, created.PlayerID)
	}

	return &CreateOutput{Challenge: created}, nil
}

func (r *redisRepository) GetPending(ctx context.Context, input GetPendingInput) (*GetPendingOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := pendingKeyPrefix + input.PlayerID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no pending tribulation for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get challenge from Redis")
	}

	var rec record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal challenge")
	}

	// Redis TTL is authoritative; this covers clocks that run ahead of it
	if r.clock.Now().Unix() >= rec.ExpiresAt {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("tribulation for player %s has expired", input.PlayerID)
	}

	return &GetPendingOutput{Challenge: rec.toEntity()}, nil
}

func (r *redisRepository) Close(ctx context.Context, input CloseInput) (*CloseOutput, error) {
	if err := validateClose(input); err != nil {
		return nil, err
	}

	key := pendingKeyPrefix + input.PlayerID
	var closed *record

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("no pending tribulation for player %s", input.PlayerID)
			}
			return errors.Wrapf(err, "failed to get challenge from Redis")
		}

		var rec record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return errors.Wrapf(err, "failed to unmarshal challenge")
		}
		if rec.ID != input.ChallengeID {
			return errors.NotFoundf("challenge %s is not pending for player %s", input.ChallengeID, input.PlayerID).
				WithMeta(errors.MetaPendingChallengeID, rec.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		if err != nil {
			return err
		}
		closed = &rec
		return nil
	}, key)
	if err != nil {
		if err == redis.TxFailedErr {
			slog.WarnContext(ctx, "challenge changed while closing",
				"player_id", input.PlayerID,
				"challenge_id", input.ChallengeID)
			return nil, errors.Abortedf("challenge %s was modified concurrently", input.ChallengeID)
		}
		if errors.GetCode(err) != errors.CodeInternal {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to close challenge")
	}

	out := closed.toEntity()
	out.Status = input.Status
	return &CloseOutput{Challenge: out}, nil
}
