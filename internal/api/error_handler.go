package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edulearn/marketplace/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// domainStatus maps sentinel errors to responses, first match wins. An empty
// message exposes the wrapped error text, which carries useful detail for
// validation and access failures.
var domainStatus = []struct {
	target error
	code   int
	msg    string
}{
	{domain.ErrNoActiveSession, http.StatusUnauthorized, "no active session"},
	{domain.ErrForbidden, http.StatusForbidden, ""},
	{domain.ErrEmptyCredentials, http.StatusBadRequest, ""},
	{domain.ErrInvalidRole, http.StatusBadRequest, "role must be admin or student"},
	{domain.ErrCourseNotFound, http.StatusNotFound, "course not found"},
	{domain.ErrLessonNotFound, http.StatusNotFound, "lesson not found"},
	{domain.ErrNotEnrolled, http.StatusNotFound, "not enrolled in course"},
	{domain.ErrAlreadyEnrolled, http.StatusConflict, "already enrolled in course"},
	{domain.ErrInvalidCourse, http.StatusUnprocessableEntity, ""},
	{domain.ErrInvalidLessonOrder, http.StatusUnprocessableEntity, ""},
}

// NewHTTPErrorHandler renders every error as {"error": "..."}. Unknown errors
// are logged and reported as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, s := range domainStatus {
		if !errors.Is(err, s.target) {
			continue
		}
		if s.msg == "" {
			return s.code, err.Error()
		}
		return s.code, s.msg
	}
	return http.StatusInternalServerError, "internal server error"
}
