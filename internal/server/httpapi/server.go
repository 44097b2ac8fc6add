package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pandax-i/healthhub/internal/logging"
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds a Server listening on addr.
func NewServer(addr string, handler http.Handler, logger logging.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until Shutdown is called or the listener fails.
func (s *Server) Run() error {
	s.logger.Info(context.Background(), "http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
