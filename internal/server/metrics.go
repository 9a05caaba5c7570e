package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"libbot/internal/shared"
)

// MetricsServer serves /healthz and /metrics for operators.
type MetricsServer struct {
	server *http.Server
	logger *log.Logger
}

// NewMetricsServer builds the observability server on the configured address.
func NewMetricsServer(cfg shared.ServerConfig, metrics *shared.Metrics, logger *log.Logger) *MetricsServer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	logger = shared.WithLogger(logger, "component", "metrics")

	router := NewBasicRouter()
	router.Use(requestLogger(logger))

	router.Handle(http.MethodGet, "/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}))

	router.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(
		metrics.Registry,
		promhttp.HandlerOpts{},
	))

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the server until ctx is cancelled.
func (m *MetricsServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		m.logger.Info("metrics server listening", "addr", m.server.Addr)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return m.server.Shutdown(shutdownCtx)
	}
}

// requestLogger logs each request line at debug level.
func requestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		})
	}
}
