// Package server exposes the email generation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mailforge-ai/mailforge"
	"github.com/mailforge-ai/mailforge/slogger"
)

// Generator is the pipeline surface the server depends on.
type Generator interface {
	Generate(ctx context.Context, req mailforge.Request) (*mailforge.Result, error)
}

const shutdownTimeout = 10 * time.Second

// Server serves the generation API with graceful shutdown.
type Server struct {
	addr      string
	generator Generator
	logger    slogger.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New returns a Server listening on addr.
func New(addr string, generator Generator, opts ...Option) *Server {
	s := &Server{
		addr:      addr,
		generator: generator,
		logger:    slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/generate", s.handleGenerate)
	return r
}

// Run starts the server and blocks until the context is cancelled or an
// interrupt signal arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	s.logger.Info("server listening", "addr", s.addr)

	var runErr error
	select {
	case <-ctx.Done():
	case <-stop:
	case runErr = <-errCh:
		if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			return runErr
		}
		return nil
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if runErr = <-errCh; runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return runErr
	}
	return nil
}
