// Package server is the composition root: it wires the database, session
// manager, services, and handlers onto a chi router and owns the HTTP
// server lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/auth"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/config"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/handler"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/middleware"
	sqliteRepo "github.com/aartijoshi3010-cyber/MentalHealth/internal/repository/sqlite"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/service"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/session"
)

// Server holds the router and the resources it owns. The database
// connection is closed during shutdown, after in-flight requests drain.
type Server struct {
	router *chi.Mux
	cfg    config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New builds the full dependency graph and returns a ready-to-start Server.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.SessionSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes(tokens)

	return s, nil
}

// setupRoutes wires middleware, services, and handlers.
//
// Route map:
//
//	GET  /healthz                    liveness
//	POST /api/auth/signup            register
//	POST /api/auth/login             authenticate, start session
//	POST /api/auth/logout            end session
//	GET  /api/me                     current user          (session)
//	POST /api/moods                  record mood           (session)
//	GET  /api/moods?order=asc|desc   list moods            (session)
//	GET  /api/moods/export           CSV download          (session)
//	GET  /api/moods/frequency        label counts          (session)
//	GET  /api/moods/timeline         ordinal projection    (session)
//	POST /api/habits                 add habit             (session)
//	GET  /api/habits                 list habits           (session)
//	PATCH /api/habits/{id}/done      set done flag         (session)
func (s *Server) setupRoutes(tokens *auth.TokenService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// The presentation layer is a separate origin; cookies ride along, so
	// credentials must be allowed and the origin list stays explicit.
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	sessions := session.NewManager(s.cfg.SessionTTL)
	passwords := auth.NewPasswordService()

	accountService := service.NewAccountService(s.db.Users(), passwords, s.logger)
	moodService := service.NewMoodService(s.db.Moods(), s.logger)
	habitService := service.NewHabitService(s.db.Habits(), s.logger)

	authHandler := handler.NewAuthHandler(accountService, tokens, sessions, s.logger)
	moodHandler := handler.NewMoodHandler(moodService, s.logger)
	habitHandler := handler.NewHabitHandler(habitService, s.logger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.HandleSignup)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(tokens, sessions))

			r.Get("/me", authHandler.HandleMe)

			r.Post("/moods", moodHandler.HandleRecord)
			r.Get("/moods", moodHandler.HandleList)
			r.Get("/moods/export", moodHandler.HandleExportCSV)
			r.Get("/moods/frequency", moodHandler.HandleFrequency)
			r.Get("/moods/timeline", moodHandler.HandleTimeline)

			r.Post("/habits", habitHandler.HandleAdd)
			r.Get("/habits", habitHandler.HandleList)
			r.Patch("/habits/{id}/done", habitHandler.HandleSetDone)
		})
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests (30s budget) and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.cfg.Port),
			slog.String("database", s.cfg.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
