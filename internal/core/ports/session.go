package ports

import (
	"context"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// SessionSlot is the single durable key-value record that carries the
// session across process restarts. Load returns domain.ErrSlotEmpty when
// nothing is stored.
type SessionSlot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// SessionService owns the current identity and every transition of it.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, email, password, name string) (*domain.Identity, error)
	Logout(ctx context.Context)
	SwitchRole(ctx context.Context, role domain.Role) error
	Restore(ctx context.Context)
	// Current returns a snapshot of the identity, or nil when anonymous.
	Current() *domain.Identity
	IsAuthenticated() bool
}
