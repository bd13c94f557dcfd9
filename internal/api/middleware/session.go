package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// IdentityKey is the echo context key holding the *domain.Identity snapshot
// of the request's session.
const IdentityKey = "identity"

// RequireSession rejects anonymous requests and injects the current identity
// into the context. The identity comes from the server-side session store,
// never from request data.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := sessions.Current()
			if id == nil {
				return domain.ErrNoActiveSession
			}
			c.Set(IdentityKey, id)
			return next(c)
		}
	}
}
