// Package config loads process configuration from the environment
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

// Prefix is prepended to every environment variable name
const Prefix = "FABULA_"

// Log levels accepted by LogLevel
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings shared by the server and the roll command
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	// RedisAddr enables the Redis repositories; empty keeps everything in memory
	RedisAddr string `env:"REDIS_ADDR"`

	// ActorFile is a YAML file of actors loaded at startup
	ActorFile string `env:"ACTOR_FILE"`

	RollMode   string        `env:"ROLL_MODE" envDefault:"public"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	RollLogTTL time.Duration `env:"ROLL_LOG_TTL" envDefault:"15m"`

	// Seed makes dice deterministic when non-zero
	Seed int64 `env:"SEED"`
}

// Load reads the given .env files when present, then the environment
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		// a missing .env file is normal outside local development
		_ = godotenv.Load(f)
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	cfg.RollMode = normalizeRollMode(cfg.RollMode)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalizeRollMode canonicalizes known modes; unknown values are left for Validate
func normalizeRollMode(s string) string {
	if mode, ok := sink.ParseRollMode(s); ok {
		return string(mode)
	}
	return s
}

// SetRollMode applies a roll mode given on the command line
func (c *Config) SetRollMode(s string) {
	c.RollMode = normalizeRollMode(s)
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("RollMode", c.RollMode, sink.AllRollModes, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)
	if c.RollLogTTL <= 0 {
		vb.Field("RollLogTTL", "must be positive")
	}

	return vb.Build()
}

// DefaultRollMode returns RollMode as a sink roll mode
func (c *Config) DefaultRollMode() sink.RollMode {
	return sink.RollMode(c.RollMode)
}
