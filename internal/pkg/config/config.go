package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Session slot backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool   `env:"LOG_PRETTY,   default=false"`
	AdminEmail  string `env:"ADMIN_EMAIL,  default=admin@edulearn.com"`
	CatalogPath string `env:"CATALOG_PATH"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=file"`
	// File is the slot path for the file backend; empty selects
	// ~/.edulearn/session.json.
	File string `env:"SESSION_FILE"`
	Key  string `env:"SESSION_KEY, default=edulearn:session:user"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,         default=localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,           default=0"`
	Timeout     time.Duration `env:"REDIS_TIMEOUT,      default=2s"`
	OpenTimeout time.Duration `env:"REDIS_BREAKER_OPEN, default=5s"`
}

// Load reads a .env file when one is present, then environment variables
// using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.Session.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("config: unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
