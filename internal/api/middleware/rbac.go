package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// RBAC guards a dashboard group so only the given view's role reaches it.
// It reads the identity placed by RequireSession; callers in the wrong role
// get domain.ErrForbidden wrapped with the view they should land on instead.
func RBAC(view domain.View) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(IdentityKey).(*domain.Identity)
			if id == nil {
				return domain.ErrNoActiveSession
			}
			if landing := domain.LandingView(id); landing != view {
				return fmt.Errorf("%w: %s view, go to %s", domain.ErrForbidden, view, landing.Path())
			}
			return next(c)
		}
	}
}
