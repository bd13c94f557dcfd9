package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// DefaultAdminEmail is the privileged address that logs in as an admin.
const DefaultAdminEmail = "admin@edulearn.com"

const (
	adminDisplayName   = "Admin User"
	studentDisplayName = "Student User"
)

// identityNamespace scopes the name-based ids derived from login emails.
var identityNamespace = uuid.MustParse("6f1c3a52-8d0e-4b7a-9e55-2c4f0b9d7a11")

// SessionStore holds the single process-wide session. Authentication is
// mocked: login trusts the supplied email and derives the role from it, so the
// store must never guard anything that needs real privilege checks.
type SessionStore struct {
	mu         sync.RWMutex
	current    *domain.Identity
	slot       ports.SessionSlot
	log        zerolog.Logger
	adminEmail string
	now        func() time.Time
	newID      func() string
}

// SessionOption customises a SessionStore.
type SessionOption func(*SessionStore)

// WithAdminEmail overrides the privileged login address.
func WithAdminEmail(email string) SessionOption {
	return func(s *SessionStore) {
		if email = strings.TrimSpace(email); email != "" {
			s.adminEmail = email
		}
	}
}

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionStore) { s.now = now }
}

// WithIDGenerator overrides the id source used by Register.
func WithIDGenerator(newID func() string) SessionOption {
	return func(s *SessionStore) { s.newID = newID }
}

// NewSessionStore returns an anonymous store backed by slot. Call Restore once
// at startup to pick up a persisted session.
func NewSessionStore(slot ports.SessionSlot, log zerolog.Logger, opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		slot:       slot,
		log:        log,
		adminEmail: DefaultAdminEmail,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return "user-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login builds an identity from email without checking the password against
// any store. Only empty input is rejected.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrEmptyCredentials
	}

	id := &domain.Identity{
		ID:        uuid.NewSHA1(identityNamespace, []byte(strings.ToLower(email))).String(),
		Email:     email,
		Name:      studentDisplayName,
		Role:      domain.RoleStudent,
		CreatedAt: s.now(),
	}
	if strings.EqualFold(email, s.adminEmail) {
		id.Name = adminDisplayName
		id.Role = domain.RoleAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.persist(ctx, "login")

	s.log.Info().Str("user_id", id.ID).Str("role", string(id.Role)).Msg("session started")
	return cloneIdentity(id), nil
}

// Register creates a fresh student identity with a collision-resistant id.
func (s *SessionStore) Register(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	email, name = strings.TrimSpace(email), strings.TrimSpace(name)
	if email == "" || name == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrEmptyCredentials
	}

	id := &domain.Identity{
		ID:        s.newID(),
		Email:     email,
		Name:      name,
		Role:      domain.RoleStudent,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.persist(ctx, "register")

	s.log.Info().Str("user_id", id.ID).Msg("identity registered")
	return cloneIdentity(id), nil
}

// Logout clears the session and the durable slot. Calling it while anonymous
// is a no-op.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	userID := s.current.ID
	s.current = nil

	if err := s.slot.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session slot not cleared")
	}
	s.log.Info().Str("user_id", userID).Msg("session ended")
}

// SwitchRole changes only the role of the current identity so a single
// session can preview both dashboards. It is not a privilege change.
func (s *SessionStore) SwitchRole(ctx context.Context, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.ErrNoActiveSession
	}
	if s.current.Role == role {
		return nil
	}

	from := s.current.Role
	s.current.Role = role
	s.persist(ctx, "switch_role")

	s.log.Info().
		Str("user_id", s.current.ID).
		Str("from", string(from)).
		Str("to", string(role)).
		Msg("role switched")
	return nil
}

// Restore loads the persisted identity. A missing slot leaves the session
// anonymous; a malformed one is discarded without surfacing an error.
func (s *SessionStore) Restore(ctx context.Context) {
	data, err := s.slot.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			s.log.Warn().Err(err).Msg("session slot unreadable, starting anonymous")
		}
		s.setCurrent(nil)
		return
	}

	id, err := decodeIdentity(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding persisted session")
		if clearErr := s.slot.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("session slot not cleared")
		}
		s.setCurrent(nil)
		return
	}

	s.setCurrent(id)
	s.log.Debug().Str("user_id", id.ID).Msg("session restored")
}

// Current returns a copy of the identity, or nil when anonymous.
func (s *SessionStore) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdentity(s.current)
}

// IsAuthenticated reports whether an identity is present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *SessionStore) setCurrent(id *domain.Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
}

// persist writes the current identity to the slot. Failures degrade to an
// unpersisted session; the caller's operation still succeeds. Must be called
// with s.mu held.
func (s *SessionStore) persist(ctx context.Context, op string) {
	data, err := json.Marshal(s.current)
	if err == nil {
		err = s.slot.Save(ctx, data)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("session not persisted")
	}
}

func decodeIdentity(data []byte) (*domain.Identity, error) {
	var id domain.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, errors.Join(domain.ErrMalformedPersistedState, err)
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &id, nil
}

func cloneIdentity(id *domain.Identity) *domain.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
