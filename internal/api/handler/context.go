package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/api/middleware"
	"github.com/edulearn/marketplace/internal/core/domain"
)

// ctxIdentity extracts the identity injected by RequireSession. A missing
// identity means the route was wired without the middleware; reject with 401
// rather than serve an anonymous caller.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if id == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the struct
// validator registered on the Echo instance.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
