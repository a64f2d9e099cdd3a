// Package server exposes the lumio summary and share operations over HTTP
// for the browser client.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/buildinfo"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/observability"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/share"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
)

// ServiceName identifies the service in build info and log entries.
const ServiceName = "lumio"

// Server wires the generator and share service into an HTTP surface.
type Server struct {
	cfg       *config.ServiceConfig
	log       logging.Logger
	generator *summarize.Generator
	shares    *share.Service
	metrics   *observability.Metrics
	tracer    *observability.Tracer
}

// Options configure optional server collaborators.
type Options struct {
	// Metrics overrides the default-registered metrics. Tests pass a set
	// backed by a private registry.
	Metrics *observability.Metrics
}

// New creates a Server. A nil logger falls back to the nop logger.
func New(cfg *config.ServiceConfig, generator *summarize.Generator, shares *share.Service, log logging.Logger, opts *Options) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	metrics := observability.DefaultMetrics()
	if opts != nil && opts.Metrics != nil {
		metrics = opts.Metrics
	}
	return &Server{
		cfg:       cfg,
		log:       log,
		generator: generator,
		shares:    shares,
		metrics:   metrics,
		tracer:    observability.NewTracer(),
	}
}

// Handler builds the full route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("POST /share", s.handleShare)
	mux.HandleFunc("GET /templates", s.handleTemplates)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /version", buildinfo.Handler(ServiceName))
	mux.Handle("GET /metrics", promhttp.Handler())

	var h http.Handler = mux
	h = s.withMetrics(h)
	h = s.withLogging(h)
	h = s.withCORS(h)
	h = s.withRecovery(h)
	h = withRequestID(h)
	return h
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
// within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddress,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logging.F("address", s.cfg.ListenAddress))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", logging.F("grace", s.cfg.ShutdownGrace))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
