package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/api/middleware"
	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

type stubSessions struct {
	current    *domain.Identity
	loginFn    func(ctx context.Context, email, password string) (*domain.Identity, error)
	registerFn func(ctx context.Context, email, password, name string) (*domain.Identity, error)
	switchFn   func(ctx context.Context, role domain.Role) error
	logouts    int
}

func (s *stubSessions) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	id, err := s.loginFn(ctx, email, password)
	if err == nil {
		s.current = id
	}
	return id, err
}

func (s *stubSessions) Register(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	id, err := s.registerFn(ctx, email, password, name)
	if err == nil {
		s.current = id
	}
	return id, err
}

func (s *stubSessions) Logout(context.Context) {
	s.logouts++
	s.current = nil
}

func (s *stubSessions) SwitchRole(ctx context.Context, role domain.Role) error {
	if s.switchFn != nil {
		return s.switchFn(ctx, role)
	}
	if s.current == nil {
		return domain.ErrNoActiveSession
	}
	s.current.Role = role
	return nil
}

func (s *stubSessions) Restore(context.Context) {}

func (s *stubSessions) Current() *domain.Identity { return s.current }

func (s *stubSessions) IsAuthenticated() bool { return s.current != nil }

// stubCatalog embeds the interface so tests only implement what they call.
type stubCatalog struct {
	ports.CatalogService
	browseFn   func(ctx context.Context, state domain.QueryState) ([]domain.Course, error)
	getFn      func(ctx context.Context, id string) (*domain.Course, error)
	createFn   func(ctx context.Context, in ports.CourseInput) (*domain.Course, error)
	updateFn   func(ctx context.Context, id string, in ports.CourseInput) (*domain.Course, error)
	deleteFn   func(ctx context.Context, id string) error
	addLesson  func(ctx context.Context, courseID string, in ports.LessonInput) (*domain.Course, error)
	categories []string
	stats      *ports.CatalogStats
}

func (s *stubCatalog) Browse(ctx context.Context, state domain.QueryState) ([]domain.Course, error) {
	return s.browseFn(ctx, state)
}

func (s *stubCatalog) Categories(context.Context) ([]string, error) { return s.categories, nil }

func (s *stubCatalog) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalog) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	return s.createFn(ctx, in)
}

func (s *stubCatalog) UpdateCourse(ctx context.Context, id string, in ports.CourseInput) (*domain.Course, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCatalog) DeleteCourse(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCatalog) AddLesson(ctx context.Context, courseID string, in ports.LessonInput) (*domain.Course, error) {
	return s.addLesson(ctx, courseID, in)
}

func (s *stubCatalog) Stats(context.Context) (*ports.CatalogStats, error) { return s.stats, nil }

type stubDashboard struct {
	enrollFn    func(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	completeFn  func(ctx context.Context, userID, courseID, lessonID string) (*domain.Enrollment, error)
	dashboardFn func(ctx context.Context, userID string) (*ports.StudentDashboard, error)
}

func (s *stubDashboard) Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	return s.enrollFn(ctx, userID, courseID)
}

func (s *stubDashboard) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (*domain.Enrollment, error) {
	return s.completeFn(ctx, userID, courseID, lessonID)
}

func (s *stubDashboard) Dashboard(ctx context.Context, userID string) (*ports.StudentDashboard, error) {
	return s.dashboardFn(ctx, userID)
}

// newTestContext builds an Echo context with the validator registered. A
// non-empty body is sent as JSON.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withIdentity(c echo.Context, id *domain.Identity) echo.Context {
	c.Set(middleware.IdentityKey, id)
	return c
}

func statusOf(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
