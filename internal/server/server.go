// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "composition root": it receives an open store and
// wires store → services → handlers → routes in one place. main.go only
// reads config, opens the store and calls New, Bootstrap and Start.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/travel-blog/internal/auth"
	"github.com/sakif/travel-blog/internal/handler"
	"github.com/sakif/travel-blog/internal/middleware"
	"github.com/sakif/travel-blog/internal/repository"
	"github.com/sakif/travel-blog/internal/service"
)

type Config struct {
	Port       int
	CORSOrigin string
}

// Server owns the router and the store. The store is closed when Start
// returns.
type Server struct {
	router       *chi.Mux
	config       Config
	logger       *slog.Logger
	store        repository.Store
	destinations *service.DestinationService
}

// New wires every route against store.
func New(cfg Config, store repository.Store, passwords *auth.PasswordService, logger *slog.Logger) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		config:       cfg,
		logger:       logger,
		store:        store,
		destinations: service.NewDestinationService(store.Destinations(), logger),
	}
	s.setupRoutes(passwords)
	return s
}

// Router exposes the fully wired handler, for tests and for embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /                      → welcome message
// GET    /healthz               → store ping
// GET    /api/destinations      → list (?type=popular)
// GET    /api/destinations/{id} → one destination
// POST   /api/register          → create user
// POST   /api/login             → check credentials
// GET    /api/messages          → list messages, oldest first
// POST   /api/messages          → create message
// DELETE /api/messages/{id}     → delete message
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID  assigns an ID the logger can print
// 2. RealIP     extracts the client IP from proxy headers
// 3. Logger     logs each request with timing info
// 4. Recoverer  turns panics into 500s (after Logger, so they get logged)
// 5. CORS       answers preflights before routing
func (s *Server) setupRoutes(passwords *auth.PasswordService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.CORS(s.config.CORSOrigin))

	authService := service.NewAuthService(s.store.Users(), passwords, s.logger)
	messageService := service.NewMessageService(s.store.Messages(), s.logger)

	homeHandler := handler.NewHomeHandler(s.store, s.logger)
	destinationHandler := handler.NewDestinationHandler(s.destinations, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)
	messageHandler := handler.NewMessageHandler(messageService, s.logger)

	s.router.Get("/", homeHandler.HandleWelcome)
	s.router.Get("/healthz", homeHandler.HandleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/destinations", destinationHandler.HandleList)
		r.Get("/destinations/{id}", destinationHandler.HandleGetByID)

		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)

		r.Get("/messages", messageHandler.HandleList)
		r.Post("/messages", messageHandler.HandleCreate)
		r.Delete("/messages/{id}", messageHandler.HandleDelete)
	})
}

// Bootstrap prepares the store for traffic: ping, schema setup, then the
// first-boot seed. None of these failures stops the server. An unreachable
// database is logged and the API starts anyway; requests fail with 500
// until the driver reconnects.
func (s *Server) Bootstrap(ctx context.Context) {
	n, err := Prepare(ctx, s.store, s.destinations, s.logger)
	if err != nil {
		s.logger.Error("store bootstrap incomplete; serving without seeding",
			slog.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("seeded destination catalog", slog.Int("count", n))
	}
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
// 3. Close the store (disconnects from MongoDB / flushes the SQLite WAL)
func (s *Server) Start() error {
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.store.Close(ctx); err != nil {
			s.logger.Error("closing store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
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
