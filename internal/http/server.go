package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/davidbz/pricewise/internal/config"
	"github.com/davidbz/pricewise/internal/http/middleware"
	"github.com/davidbz/pricewise/internal/metrics"
	"github.com/davidbz/pricewise/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	metrics     *metrics.Collector
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server. The underlying http.Server is built here so
// Shutdown can run concurrently with, or before, Start.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	collector *metrics.Collector,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:      *cfg,
		handler:     handler,
		metrics:     collector,
		middlewares: middlewares,
	}

	// Cancelled on shutdown so open price streams end instead of holding Shutdown open.
	baseCtx, cancel := context.WithCancel(context.Background())

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Routes(),
		ReadTimeout:       time.Duration(s.config.ReadTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(s.config.WriteTimeout) * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	s.srv.RegisterOnShutdown(cancel)

	return s
}

// Routes returns the request multiplexer wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/prices", s.handler.HandleListPrices)
	mux.HandleFunc("POST /v1/prices", s.handler.HandleUpsertPrice)
	mux.HandleFunc("GET /v1/prices/stream", s.handler.HandleStreamPrices)
	mux.HandleFunc("GET /v1/currencies", s.handler.HandleCurrencies)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	return s.middlewares(mux)
}

// Start starts the HTTP server. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	observability.FromContext(context.Background()).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
