// Package config loads runtime settings from WILDS_* environment variables
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Save backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	// BackendMemory keeps saves for the life of the process
	BackendMemory = "memory"
)

// Config is the resolved runtime configuration. CLI flags override it.
type Config struct {
	// Seed fixes the dice; zero picks one from the clock
	Seed uint64 `env:"WILDS_SEED"`
	// ContentDir overrides the embedded content tables
	ContentDir  string `env:"WILDS_CONTENT_DIR"`
	SaveBackend string `env:"WILDS_SAVE_BACKEND" envDefault:"sqlite"`
	RedisAddr   string `env:"WILDS_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath  string `env:"WILDS_SQLITE_PATH" envDefault:"wilds.db"`
	LogLevel    string `env:"WILDS_LOG_LEVEL" envDefault:"warn"`
	// LogFile receives logs instead of stderr; play discards logs without it
	LogFile    string `env:"WILDS_LOG_FILE"`
	PlayerName string `env:"WILDS_PLAYER_NAME"`
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.SaveBackend = strings.ToLower(strings.TrimSpace(cfg.SaveBackend))
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks the backend settings and the log level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("SaveBackend", c.SaveBackend, []string{BackendSQLite, BackendRedis, BackendMemory}, vb)
	switch c.SaveBackend {
	case BackendRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level; Validate guarantees it parses
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel accepts debug, info, warn or error in any case
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
