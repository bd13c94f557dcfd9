package domain

import (
	"strings"
	"time"
)

// Role is the sole authorization signal of the application.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Identity is the user record held by the session store. Its JSON form is the
// payload of the durable session slot.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks that a decoded identity is usable as a session.
func (i *Identity) Validate() error {
	if i == nil || i.ID == "" || i.Email == "" || !i.Role.Valid() {
		return ErrMalformedPersistedState
	}
	return nil
}

// IsAdmin reports whether the identity may reach the admin surface.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// View is the role-appropriate landing view a caller navigates to after a
// session transition.
type View string

const (
	ViewPublic  View = "public"
	ViewStudent View = "student"
	ViewAdmin   View = "admin"
)

// Path returns the route the view is mounted on.
func (v View) Path() string {
	switch v {
	case ViewAdmin:
		return "/admin"
	case ViewStudent:
		return "/dashboard"
	default:
		return "/"
	}
}

// LandingView maps the current identity (nil when anonymous) to its view.
func LandingView(id *Identity) View {
	switch {
	case id == nil:
		return ViewPublic
	case id.Role == RoleAdmin:
		return ViewAdmin
	default:
		return ViewStudent
	}
}
