package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/khanhle/schoolhealth/internal/bootstrap"
	"github.com/khanhle/schoolhealth/internal/config"
)

// Server owns the HTTP listener and the resources it must release on exit
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer wires the application through the bootstrap steps: config and
// logging, database with migrations, dependency graph, routing.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("dependencies: %w", err)
	}

	return &Server{
		config: cfg,
		router: bootstrap.SetupRouter(cfg, deps, lgr),
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Run serves HTTP until the listener fails or an interrupt arrives, then
// shuts down gracefully.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		listenErr <- s.http.ListenAndServe()
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listener failed: %w", err)
		}
	case sig := <-interrupt:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests within a deadline and closes the pool
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var failed bool
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			failed = true
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	s.logger.Info().Msg("Server stopped")
	if failed {
		return errors.New("shutdown completed with errors")
	}
	return nil
}
