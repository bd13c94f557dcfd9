package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 2 * time.Second

// Config describes the Redis server that backs the session slot.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds dialing, every read and write, and the startup ping.
	Timeout time.Duration
}

// Connect opens a small client sized for a single writer and pings it once.
// Commands are not retried: the slot's breaker decides when to back off.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   "edulearn",
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		MaxRetries:   -1,
		PoolSize:     2,
	})

	if err := Ping(client, timeout)(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Ping returns a readiness check for client bounded by timeout.
func Ping(client *redis.Client, timeout time.Duration) func(context.Context) error {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return client.Ping(ctx).Err()
	}
}
