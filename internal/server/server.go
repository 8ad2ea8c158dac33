// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: the entire dependency chain
// (sqlite.DB → services → handlers) is wired here, and nowhere else.
// The handler layer never touches the database; the service layer never
// touches HTTP.
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

	"github.com/sakif/blog-api/internal/auth"
	"github.com/sakif/blog-api/internal/config"
	"github.com/sakif/blog-api/internal/handler"
	"github.com/sakif/blog-api/internal/middleware"
	sqliteRepo "github.com/sakif/blog-api/internal/repository/sqlite"
	"github.com/sakif/blog-api/internal/service"
)

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so the WAL is flushed and the file lock
// released.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server and wires the full dependency graph.
//
// Token and password services are constructed here from explicit config
// values — business logic never reads the environment. A bad JWT secret or
// an unopenable database makes New fail, which main treats as fatal.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes(tokens)

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTE STRUCTURE:
//
//	POST   /login                                        → issue access token
//	GET    /posts                                        → list posts
//	POST   /posts                              (bearer)  → create post
//	DELETE /posts/{postId}                     (bearer)  → delete post + comments
//	GET    /posts/{postId}/comments                      → list comments
//	POST   /posts/{postId}/comments                      → create comment
//	DELETE /posts/{postId}/comments/{commentId} (bearer) → delete comment
//	POST   /posts/{postId}/comments/{commentId}/like     → increment like
//	POST   /posts/{postId}/comments/{commentId}/dislike  → increment dislike
//	GET    /healthz                                      → liveness probe
func (s *Server) setupRoutes(tokens *auth.TokenService) {
	// Global middleware, in order: request ID, real IP, panic recovery,
	// then our structured request log.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	passwords := auth.NewPasswordService()

	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	postService := service.NewPostService(s.db, s.logger)
	commentService := service.NewCommentService(s.db, s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	postHandler := handler.NewPostHandler(postService, s.logger)
	commentHandler := handler.NewCommentHandler(commentService, s.logger)

	requireAuth := auth.RequireAuth(tokens)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.router.Post("/login", authHandler.HandleLogin)

	s.router.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.HandleList)
		r.With(requireAuth).Post("/", postHandler.HandleCreate)
		r.With(requireAuth).Delete("/{postId}", postHandler.HandleDelete)

		r.Route("/{postId}/comments", func(r chi.Router) {
			r.Get("/", commentHandler.HandleList)
			r.Post("/", commentHandler.HandleCreate)
			r.With(requireAuth).Delete("/{commentId}", commentHandler.HandleDelete)
			r.Post("/{commentId}/like", commentHandler.HandleLike)
			r.Post("/{commentId}/dislike", commentHandler.HandleDislike)
		})
	})
}

// Router exposes the configured router. Tests mount it directly on
// httptest.Server without going through Start.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the server's resources without serving. Useful for tests
// and error paths in main.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests (30s
// cap), close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         s.config.Addr,
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
			slog.String("addr", s.config.Addr),
			slog.String("database", s.config.DBPath),
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
