package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage backends.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	SessionSecret string        `env:"SESSION_SECRET, default=tradesim-dev-secret"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	LoginDelay    time.Duration `env:"LOGIN_DELAY,    default=2s"`
	Storage       string        `env:"STORAGE,        default=redis"`

	Redis RedisConfig
	Feed  FeedConfig
}

type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int           `env:"REDIS_DB,   default=0"`
	TTL  time.Duration `env:"REDIS_TTL,  default=168h"`
}

type FeedConfig struct {
	Interval time.Duration `env:"FEED_INTERVAL, default=1s"`
	Seed     uint64        `env:"FEED_SEED,     default=0"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process reads configuration from l and validates it.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.Storage != StorageRedis && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageRedis, StorageMemory, cfg.Storage)
	}
	if cfg.LoginDelay < 0 {
		return nil, fmt.Errorf("LOGIN_DELAY must not be negative, got %s", cfg.LoginDelay)
	}
	return &cfg, nil
}
