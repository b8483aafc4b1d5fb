package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/ubench/internal/logging"
)

// Timeouts for the metrics HTTP server. The endpoint serves small plaintext
// responses to scrapers; anything slower than these limits is a stuck client.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownGrace     = 5 * time.Second
)

// Server hosts the /metrics endpoint next to a running benchmark loop.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds the metrics server for the given listen address.
//
// Parameters:
//   - addr: The listen address (e.g. ":9090").
//   - m: The metrics to expose.
//   - logger: The structured logger for lifecycle events.
//
// Returns:
//   - *Server: The configured, not yet started server.
func NewServer(addr string, m *Metrics, logger logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Start runs the server until ctx is canceled, then shuts it down gracefully.
// It blocks and returns the terminal server error, or nil on clean shutdown.
//
// Parameters:
//   - ctx: The context whose cancellation stops the server.
//
// Returns:
//   - error: The listener error, or nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.httpServer.Addr))
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("metrics server shutdown", logging.Err(err))
			return err
		}
		s.logger.Info("metrics server stopped")
		return nil
	}
}
