package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/pkg/metrics"
)

// AuthHandler exposes the session store. Authentication is mocked: the
// server holds one process-wide session and trusts the supplied email.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login starts a session for the given email.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SessionTransitionsTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(id))
}

// Register creates a student identity and starts a session for it.
//
// @Summary      Register a new student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.sessions.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	metrics.SessionTransitionsTotal.WithLabelValues("register").Inc()
	return c.JSON(http.StatusCreated, toSessionResponse(id))
}

// Logout ends the session. Logging out while anonymous succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	wasAuthenticated := h.sessions.IsAuthenticated()
	h.sessions.Logout(c.Request().Context())

	if wasAuthenticated {
		metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	}
	return c.JSON(http.StatusOK, toSessionResponse(nil))
}

// Session reports the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Current()))
}

// SwitchRole previews the other dashboard by changing the session's role.
//
// @Summary      Switch role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      switchRoleRequest  true  "Target role"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/role [put]
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	var req switchRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	if err := h.sessions.SwitchRole(c.Request().Context(), role); err != nil {
		return err
	}

	metrics.SessionTransitionsTotal.WithLabelValues("switch_role").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Current()))
}
