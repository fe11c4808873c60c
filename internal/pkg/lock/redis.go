package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	redisclient "github.com/KirkDiggler/cultivation-api/internal/redis"
)

const (
	lockKeyPrefix        = "lock:"
	defaultTTL           = 10 * time.Second
	defaultWait          = 5 * time.Second
	defaultRetryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only if this holder still owns it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig configures a Redis-backed locker
type RedisConfig struct {
	Client redisclient.Client
	// TTL bounds how long a crashed holder can keep a scope
	TTL time.Duration
	// Wait bounds how long Acquire retries before giving up
	Wait time.Duration
	// RetryInterval is the pause between SET NX attempts
	RetryInterval time.Duration
}

// Validate ensures the config is valid
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	if c.Wait < 0 {
		vb.InvalidField("Wait", "must not be negative")
	}

	return vb.Build()
}

// Redis is a Locker shared across processes. A scope is a key set with
// NX and a TTL holding a random token; release deletes it only if the token
// still matches.
type Redis struct {
	client        redisclient.Client
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// NewRedis creates a Redis-backed locker
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid lock config")
	}

	l := &Redis{
		client:        cfg.Client,
		ttl:           cfg.TTL,
		wait:          cfg.Wait,
		retryInterval: cfg.RetryInterval,
	}
	if l.ttl == 0 {
		l.ttl = defaultTTL
	}
	if l.wait == 0 {
		l.wait = defaultWait
	}
	if l.retryInterval == 0 {
		l.retryInterval = defaultRetryInterval
	}
	return l, nil
}

// Acquire implements Locker
func (l *Redis) Acquire(ctx context.Context, key string) (Release, error) {
	if key == "" {
		return nil, errors.InvalidArgument("lock key is required")
	}

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	redisKey := lockKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to acquire lock %s", key)
		}
		if ok {
			return l.release(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.LockWait(ctx, key)
		case <-ticker.C:
		}
	}
}

func (l *Redis) release(redisKey, token string) Release {
	var (
		once sync.Once
		err  error
	)
	return func(ctx context.Context) error {
		once.Do(func() {
			// the holder's request may already be canceled; the scope must
			// still be freed
			ctx = context.WithoutCancel(ctx)
			deleted, runErr := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int()
			if runErr != nil {
				err = errors.WrapWithCodef(runErr, errors.CodeUnavailable, "failed to release lock %s", redisKey)
				return
			}
			if deleted == 0 {
				slog.WarnContext(ctx, "lock expired before release",
					"lock_key", redisKey)
			}
		})
		return err
	}
}
