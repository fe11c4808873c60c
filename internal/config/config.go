// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config is the server configuration
type Config struct {
	GRPCPort int    `env:"CULTIVATION_GRPC_PORT" envDefault:"50051"`
	Store    string `env:"CULTIVATION_STORE" envDefault:"redis"`

	RedisAddr  string `env:"CULTIVATION_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"CULTIVATION_SQLITE_PATH" envDefault:"cultivation.db"`

	LockTTL  time.Duration `env:"CULTIVATION_LOCK_TTL" envDefault:"10s"`
	LockWait time.Duration `env:"CULTIVATION_LOCK_WAIT" envDefault:"5s"`

	Cooldown time.Duration `env:"CULTIVATION_COOLDOWN" envDefault:"1h"`

	TribulationEnabled bool          `env:"CULTIVATION_TRIBULATION_ENABLED" envDefault:"true"`
	TribulationTTL     time.Duration `env:"CULTIVATION_TRIBULATION_TTL" envDefault:"24h"`

	// OTelEndpoint enables tracing when set
	OTelEndpoint string `env:"CULTIVATION_OTEL_ENDPOINT"`
	LogLevel     string `env:"CULTIVATION_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the store selection
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("CULTIVATION_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("CULTIVATION_STORE", c.Store, []string{StoreRedis, StoreSQLite, StoreMemory}, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("CULTIVATION_REDIS_ADDR", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("CULTIVATION_SQLITE_PATH", c.SQLitePath, vb)
	}

	if c.LockTTL <= 0 {
		vb.InvalidField("CULTIVATION_LOCK_TTL", "must be positive")
	}
	if c.LockWait <= 0 {
		vb.InvalidField("CULTIVATION_LOCK_WAIT", "must be positive")
	}
	if c.Cooldown < 0 {
		vb.InvalidField("CULTIVATION_COOLDOWN", "must not be negative")
	}
	if c.TribulationEnabled && c.TribulationTTL <= 0 {
		vb.InvalidField("CULTIVATION_TRIBULATION_TTL", "must be positive")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("CULTIVATION_LOG_LEVEL", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, info when unrecognized
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// UsesRedis reports whether any component needs a redis connection.
// Challenges and locks live in redis whenever the player store does.
func (c *Config) UsesRedis() bool {
	return c.Store == StoreRedis
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
