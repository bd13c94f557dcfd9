package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// DefaultSessionKey is the single key holding the persisted identity.
const DefaultSessionKey = "edulearn:session:user"

// SessionSlot stores the session record under one Redis key. Calls go through
// a circuit breaker so an unavailable server fails fast instead of stalling
// every session change.
type SessionSlot struct {
	client *redis.Client
	key    string
	cb     *gobreaker.CircuitBreaker
}

// SlotOptions tunes a SessionSlot. Zero values select the defaults.
type SlotOptions struct {
	Key         string
	OpenTimeout time.Duration
}

func NewSessionSlot(client *redis.Client, opts SlotOptions, log zerolog.Logger) *SessionSlot {
	key := opts.Key
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionSlot{
		client: client,
		key:    key,
		cb:     newBreaker("redis-session-slot", opts.OpenTimeout, log),
	}
}

// Load returns domain.ErrSlotEmpty when the key does not exist. A missing key
// is not counted as a breaker failure.
func (s *SessionSlot) Load(ctx context.Context) ([]byte, error) {
	v, err := s.cb.Execute(func() (interface{}, error) {
		data, err := s.client.Get(ctx, s.key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return data, err
	})
	if err != nil {
		return nil, fmt.Errorf("session slot load: %w", err)
	}
	data, _ := v.([]byte)
	if data == nil {
		return nil, domain.ErrSlotEmpty
	}
	return data, nil
}

// Save writes the record without expiry; the slot lives until Clear.
func (s *SessionSlot) Save(ctx context.Context, data []byte) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, s.key, data, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("session slot save: %w", err)
	}
	return nil
}

func (s *SessionSlot) Clear(ctx context.Context) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, s.key).Err()
	})
	if err != nil {
		return fmt.Errorf("session slot clear: %w", err)
	}
	return nil
}
