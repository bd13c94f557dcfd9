package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/edulearn/marketplace/docs"
	"github.com/edulearn/marketplace/internal/api/handler"
	"github.com/edulearn/marketplace/internal/api/middleware"
	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// Deps carries everything the router wires into handlers. All services are
// constructed once at the process root.
type Deps struct {
	Sessions  ports.SessionService
	Catalog   ports.CatalogService
	Dashboard ports.DashboardService
	Checks    map[string]handler.Check
	Log       zerolog.Logger
	// Registerer receives the HTTP request metrics. Nil selects the default
	// Prometheus registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "edulearn",
		Registerer: reg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions)
	courseHandler := handler.NewCourseHandler(d.Catalog)
	adminHandler := handler.NewAdminHandler(d.Catalog)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	healthHandler := handler.NewHealthHandler(d.Checks)

	requireSession := middleware.RequireSession(d.Sessions)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)
	auth.PUT("/role", authHandler.SwitchRole, requireSession)

	// --- Public catalog ---
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/categories", courseHandler.Categories)
	e.GET("/courses/:id", courseHandler.Get)

	// --- Student dashboard ---
	dash := e.Group("/dashboard", requireSession, middleware.RBAC(domain.ViewStudent))
	dash.GET("", dashboardHandler.Get)
	dash.POST("/enrollments", dashboardHandler.Enroll)
	dash.POST("/enrollments/:course_id/lessons/:lesson_id/complete", dashboardHandler.CompleteLesson)

	// --- Admin surface ---
	admin := e.Group("/admin", requireSession, middleware.RBAC(domain.ViewAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/courses", adminHandler.CreateCourse)
	admin.PUT("/courses/:id", adminHandler.UpdateCourse)
	admin.DELETE("/courses/:id", adminHandler.DeleteCourse)
	admin.POST("/courses/:id/lessons", adminHandler.AddLesson)

	// --- Operational endpoints (no session required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
