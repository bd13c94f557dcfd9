package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/edulearn/marketplace/internal/api/handler"
	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/core/service"
	"github.com/edulearn/marketplace/internal/infrastructure/catalog"
	redisdb "github.com/edulearn/marketplace/internal/infrastructure/db/redis"
	"github.com/edulearn/marketplace/internal/infrastructure/slot"
	"github.com/edulearn/marketplace/internal/pkg/config"
	"github.com/edulearn/marketplace/pkg/logger"
)

// app is the object graph shared by every command. It is built once per
// invocation, before the command runs.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	sessions  *service.SessionStore
	catalog   *service.CatalogService
	dashboard *service.DashboardService
	checks    map[string]handler.Check
	closers   []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*app, error) {
	a := &app{
		cfg: cfg,
		log: logger.New(logger.Options{
			Level:     cfg.LogLevel,
			Pretty:    cfg.LogPretty,
			Output:    logOut,
			Component: "edulearn",
		}),
		checks: map[string]handler.Check{},
	}

	courses, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	courseRepo := catalog.NewCourseRepository(courses)
	enrollmentRepo := catalog.NewEnrollmentRepository()

	store, err := a.openSlot(ctx)
	if err != nil {
		return nil, err
	}

	a.sessions = service.NewSessionStore(
		slot.Instrument(store),
		a.log.With().Str("component", "session").Logger(),
		service.WithAdminEmail(cfg.AdminEmail),
	)
	a.sessions.Restore(ctx)

	a.catalog = service.NewCatalogService(courseRepo, a.log.With().Str("component", "catalog").Logger())
	a.dashboard = service.NewDashboardService(courseRepo, enrollmentRepo, a.log.With().Str("component", "dashboard").Logger())

	a.log.Debug().
		Int("courses", len(courses)).
		Str("session_backend", cfg.Session.Backend).
		Str("landing", domain.LandingView(a.sessions.Current()).Path()).
		Msg("application wired")
	return a, nil
}

// openSlot selects the session slot backend. An unreachable Redis is not
// fatal: the session then lives in process memory only.
func (a *app) openSlot(ctx context.Context) (ports.SessionSlot, error) {
	switch a.cfg.Session.Backend {
	case config.BackendMemory:
		return slot.NewMemorySlot(), nil

	case config.BackendRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			Timeout:  a.cfg.Redis.Timeout,
		})
		if err != nil {
			a.log.Warn().Err(err).Str("addr", a.cfg.Redis.Addr).
				Msg("redis unavailable, session will not survive a restart")
			return slot.NewMemorySlot(), nil
		}
		a.closers = append(a.closers, client.Close)
		a.checks["redis"] = redisdb.Ping(client, a.cfg.Redis.Timeout)
		return redisdb.NewSessionSlot(client, redisdb.SlotOptions{
			Key:         a.cfg.Session.Key,
			OpenTimeout: a.cfg.Redis.OpenTimeout,
		}, a.log), nil

	default:
		path := a.cfg.Session.File
		if path == "" {
			path = slot.DefaultFilePath()
		}
		return slot.NewFileSlot(path), nil
	}
}

func (a *app) close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func loadCatalog(path string) ([]domain.Course, error) {
	if path == "" {
		return catalog.Seed()
	}
	courses, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return courses, nil
}
