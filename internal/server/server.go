package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"starwars-api/internal/middleware"
	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/redis"
)

type Server struct {
	httpServer *http.Server
	db         *database.DB
	redis      *redis.Client
	logger     *slog.Logger
}

// NewHandler wraps mux with recovery, CORS, rate limiting and trailing slash
// stripping, outermost first.
func NewHandler(mux http.Handler, cors *middleware.CORSMiddleware, limiter *middleware.RateLimiter) http.Handler {
	return middleware.Recovery(cors.Middleware(limiter.Middleware(middleware.StripTrailingSlash(mux))))
}

func New(cfg config.ServerConfig, handler http.Handler, db *database.DB, redisClient *redis.Client) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		db:     db,
		redis:  redisClient,
		logger: slog.With("component", "server"),
	}
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info("Server starting", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests then closes the database and Redis.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	if err := s.redis.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}
