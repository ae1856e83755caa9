package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/habit"
	"github.com/justestif/go-life-cheatkey/internal/mood"
)

const (
	// DefaultAddr is the default server address.
	DefaultAddr = ":8080"

	// DefaultAIRatePerMinute bounds AI generator calls per client IP.
	DefaultAIRatePerMinute = 10

	shutdownTimeout = 10 * time.Second
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr        string
	TemplatesFS fs.FS
	StaticFS    fs.FS
	Logger      *zap.Logger

	Analyzer *mood.Analyzer
	Store    habit.Store

	// Visitors records visits when set.
	Visitors VisitorRecorder

	// Generator is nil when no AI key is configured; AI routes then answer 503.
	Generator       *ai.Generator
	AIRatePerMinute int

	// Rand drives the games. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Now is the habit tracker clock. Nil uses time.Now.
	Now func() time.Time
}

// Server is the HTTP server for the web application.
type Server struct {
	router    chi.Router
	server    *http.Server
	templates *Templates
	handlers  *Handlers
	logger    *zap.Logger
}

// NewServer creates a new web server.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.AIRatePerMinute <= 0 {
		cfg.AIRatePerMinute = DefaultAIRatePerMinute
	}
	if cfg.Analyzer == nil {
		return nil, errors.New("analyzer is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("habit store is required")
	}

	templates, err := NewTemplates(cfg.TemplatesFS)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	handlers := NewHandlers(cfg, templates)

	router := chi.NewRouter()

	s := &Server{
		router:    router,
		templates: templates,
		handlers:  handlers,
		logger:    cfg.Logger,
	}

	s.setupMiddleware()
	s.setupRoutes(cfg)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes(cfg ServerConfig) {
	h := s.handlers

	fileServer := http.FileServer(http.FS(cfg.StaticFS))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	s.router.Get("/healthz", h.Health)

	s.router.Group(func(r chi.Router) {
		r.Use(withVisitor(cfg.Visitors, s.logger))

		r.Get("/", h.Home)
		r.Get("/mood", h.MoodPage)
		r.Get("/habits", h.HabitsPage)
		r.Get("/habits/list", h.HabitList)

		r.Route("/api", func(r chi.Router) {
			r.Post("/mood/analyze", h.AnalyzeMood)
			r.Post("/mood/card", h.MoodCard)

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", h.ListHabits)
				r.Post("/", h.CreateHabit)
				r.Get("/logs", h.ListLogs)
				r.Get("/progress", h.Progress)
				r.Put("/{id}", h.UpdateHabit)
				r.Delete("/{id}", h.DeleteHabit)
				r.Get("/{id}/stats", h.HabitStats)
				r.Put("/{id}/logs/{date}", h.SetHabitLog)
			})

			r.With(newIPLimiter(cfg.AIRatePerMinute).middleware).Post("/ai/{kind}", h.Generate)

			r.Post("/calc/loan", h.Loan)
			r.Post("/calc/salary", h.Salary)
			r.Post("/calc/brokerage", h.Brokerage)

			r.Get("/games/lunch", h.Lunch)
			r.Get("/games/balance", h.BalanceQuestion)
			r.Post("/games/balance/{id}/vote", h.BalanceVote)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
