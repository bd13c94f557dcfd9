package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/edulearn/marketplace/internal/core/domain"
)

func TestAuthHandler_Login_Admin(t *testing.T) {
	stub := &stubSessions{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			if email != "admin@edulearn.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Identity{ID: "1", Email: email, Name: "Admin User", Role: domain.RoleAdmin, CreatedAt: time.Now()}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"admin@edulearn.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != true || resp["view"] != "admin" || resp["redirect"] != "/admin" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "admin" || user["email"] != "admin@edulearn.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	stub := &stubSessions{
		loginFn: func(context.Context, string, string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@example.com"}`)
	if code := statusOf(handler.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(&stubSessions{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", "not-json")
	if code := statusOf(handler.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	stub := &stubSessions{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.Identity, error) {
			return &domain.Identity{ID: "user-1", Email: email, Name: name, Role: domain.RoleStudent}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"sam@example.com","password":"pw","name":"Sam"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp sessionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.User == nil || resp.User.Name != "Sam" || resp.Redirect != "/dashboard" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	stub := &stubSessions{
		registerFn: func(context.Context, string, string, string) (*domain.Identity, error) {
			return nil, domain.ErrEmptyCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"email":"a","password":"b","name":"c"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmptyCredentials) {
		t.Fatalf("expected domain error to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	stub := &stubSessions{current: &domain.Identity{ID: "1", Role: domain.RoleStudent}}
	handler := NewAuthHandler(stub)

	for i := 0; i < 2; i++ {
		c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
		if err := handler.Logout(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp sessionResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Authenticated || resp.View != "public" || resp.Redirect != "/" {
			t.Fatalf("unexpected payload: %+v", resp)
		}
	}
	if stub.logouts != 2 {
		t.Fatalf("expected 2 logout calls, got %d", stub.logouts)
	}
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	handler := NewAuthHandler(&stubSessions{})

	c, rec := newTestContext(http.MethodGet, "/auth/session", "")
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["authenticated"] != false {
		t.Fatalf("expected anonymous session, got %+v", resp)
	}
	if _, ok := resp["user"]; ok {
		t.Fatalf("anonymous session must not carry a user")
	}
}

func TestAuthHandler_SwitchRole(t *testing.T) {
	stub := &stubSessions{current: &domain.Identity{ID: "1", Email: "a@example.com", Role: domain.RoleStudent}}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/auth/role", `{"role":"admin"}`)
	if err := handler.SwitchRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp sessionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.User == nil || resp.User.Role != "admin" || resp.Redirect != "/admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_SwitchRole_UnknownRole(t *testing.T) {
	stub := &stubSessions{
		current: &domain.Identity{ID: "1", Role: domain.RoleStudent},
		switchFn: func(context.Context, domain.Role) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/auth/role", `{"role":"instructor"}`)
	if code := statusOf(handler.SwitchRole(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_SwitchRole_NoSession(t *testing.T) {
	handler := NewAuthHandler(&stubSessions{})

	c, _ := newTestContext(http.MethodPut, "/auth/role", `{"role":"admin"}`)
	if err := handler.SwitchRole(c); !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
