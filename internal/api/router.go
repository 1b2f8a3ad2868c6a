// Package api exposes the session engine over HTTP.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/session"
	"github.com/ayoisaiah/deepwork/internal/timeutil"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	engine   *session.Engine
	src      metrics.Source
	clock    timeutil.Clock
	logger   *slog.Logger
	validate *validator.Validate
}

// NewServer returns a Server. A nil clock uses the system clock and a nil
// logger uses slog.Default.
func NewServer(
	engine *session.Engine,
	src metrics.Source,
	clock timeutil.Clock,
	logger *slog.Logger,
) *Server {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		engine:   engine,
		src:      src,
		clock:    clock,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Router creates the chi router with all routes and middleware.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recovery(s.logger))

	r.Get("/health", s.Health)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.Create)
		r.Get("/history", s.History)
		r.Get("/weekly-report", s.WeeklyReport)
		r.Get("/export", s.Export)
		r.Get("/{id}", s.Get)
		r.Delete("/{id}", s.Delete)
		r.Patch("/{id}/start", s.Start)
		r.Patch("/{id}/pause", s.Pause)
		r.Patch("/{id}/resume", s.Resume)
		r.Patch("/{id}/complete", s.Complete)
	})

	return r
}
