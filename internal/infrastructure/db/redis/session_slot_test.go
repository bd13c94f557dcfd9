package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionSlot_BreakerOpensAfterFailures(t *testing.T) {
	slot := NewSessionSlot(unreachableClient(t), SlotOptions{OpenTimeout: time.Minute}, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := slot.Save(ctx, []byte("{}"))
		if err == nil {
			t.Fatalf("attempt %d: expected an error from an unreachable server", i)
		}
		if errors.Is(err, gobreaker.ErrOpenState) {
			t.Fatalf("attempt %d: breaker opened too early", i)
		}
	}

	_, err := slot.Load(ctx)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if errors.Is(err, domain.ErrSlotEmpty) {
		t.Fatalf("an open breaker must not look like an empty slot")
	}
}

func TestNewSessionSlot_DefaultKey(t *testing.T) {
	slot := NewSessionSlot(unreachableClient(t), SlotOptions{}, zerolog.Nop())
	if slot.key != DefaultSessionKey {
		t.Fatalf("expected default key, got %s", slot.key)
	}

	slot = NewSessionSlot(unreachableClient(t), SlotOptions{Key: "custom"}, zerolog.Nop())
	if slot.key != "custom" {
		t.Fatalf("expected custom key, got %s", slot.key)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 100 * time.Millisecond})
	if err == nil {
		t.Fatalf("expected ping failure")
	}
}
