// Package config loads the casino server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

// Config is the server configuration. An empty RedisAddr selects the
// in-memory repositories; a zero DiceSeed selects the crypto-backed roller.
type Config struct {
	GRPCPort          int           `env:"CASINO_GRPC_PORT"          envDefault:"50051"`
	RedisAddr         string        `env:"CASINO_REDIS_ADDR"` // host:port or redis:// URL
	SessionTTL        time.Duration `env:"CASINO_SESSION_TTL"        envDefault:"30m"`
	ScalingMultiplier int           `env:"CASINO_SCALING_MULTIPLIER" envDefault:"10"`
	BossHP            int           `env:"CASINO_BOSS_HP"            envDefault:"300"`
	DiceSeed          int64         `env:"CASINO_DICE_SEED"`
	TelemetryEnabled  bool          `env:"CASINO_TELEMETRY_ENABLED"  envDefault:"false"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}
	errors.ValidatePositive("ScalingMultiplier", c.ScalingMultiplier, vb)
	errors.ValidatePositive("BossHP", c.BossHP, vb)

	return vb.Build()
}

// UseRedis reports whether repositories should be backed by redis
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
