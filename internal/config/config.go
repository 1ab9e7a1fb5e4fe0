// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// Config holds every setting the CLI host reads at startup
type Config struct {
	Guild     GuildConfig
	Gathering GatheringConfig
	Redis     RedisConfig

	// MasterDataPath points at a catalog JSON file; empty uses the embedded catalog
	MasterDataPath string `env:"MASTER_DATA_PATH"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// GuildConfig holds the rules of one playthrough
type GuildConfig struct {
	InitialDays        int `env:"GUILD_INITIAL_DAYS"        envDefault:"30"`
	InitialGold        int `env:"GUILD_INITIAL_GOLD"        envDefault:"100"`
	PromotionThreshold int `env:"GUILD_PROMOTION_THRESHOLD" envDefault:"100"`
	HandSize           int `env:"GUILD_HAND_SIZE"           envDefault:"5"`
}

// GatheringConfig holds draft gathering settings
type GatheringConfig struct {
	LegacyRoundBonusNames []string      `env:"GATHERING_LEGACY_ROUND_BONUS_NAMES" envSeparator:","`
	SessionTTL            time.Duration `env:"GATHERING_SESSION_TTL"              envDefault:"30m"`
}

// RedisConfig enables Redis persistence when Addr is set
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB"              envDefault:"0"`
	UseTLS         bool          `env:"REDIS_TLS"             envDefault:"false"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Validate checks the ranges of every setting
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Guild.InitialDays < 1 {
		vb.Field("GUILD_INITIAL_DAYS", "must be at least 1")
	}
	if c.Guild.InitialGold < 0 {
		vb.Field("GUILD_INITIAL_GOLD", "must not be negative")
	}
	if c.Guild.PromotionThreshold < 1 {
		vb.Field("GUILD_PROMOTION_THRESHOLD", "must be at least 1")
	}
	if c.Guild.HandSize < 1 {
		vb.Field("GUILD_HAND_SIZE", "must be at least 1")
	}
	if c.Gathering.SessionTTL <= 0 {
		vb.Field("GATHERING_SESSION_TTL", "must be positive")
	}
	if c.Redis.DB < 0 {
		vb.Field("REDIS_DB", "must not be negative")
	}
	if c.Redis.ConnectTimeout <= 0 {
		vb.Field("REDIS_CONNECT_TIMEOUT", "must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("LOG_LEVEL", "unknown level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		vb.Fieldf("LOG_FORMAT", "must be text or json, got %q", c.LogFormat)
	}

	return vb.Build()
}

// SlogLevel converts LogLevel for the slog handler
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// UseRedis reports whether Redis persistence is configured
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}
