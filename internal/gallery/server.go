package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/stories"
	"github.com/vango-dev/vangoui/pkg/middleware"
)

// Server serves the story gallery.
type Server struct {
	cfg     *config.Config
	catalog *stories.Catalog
	logger  *slog.Logger

	registry *prometheus.Registry
	metrics  *middleware.Metrics

	// cache holds rendered story fragments by story id. Nil when
	// Gallery.CacheSize is zero.
	cache *lru.Cache[string, string]

	upgrader websocket.Upgrader
	live     atomic.Int64

	httpLog io.Writer
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the application logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithRegistry sets the Prometheus registry backing /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithRequestLog sends request logs to w instead of stderr.
func WithRequestLog(w io.Writer) Option {
	return func(s *Server) { s.httpLog = w }
}

// New creates a gallery for catalog configured by cfg.
func New(cfg *config.Config, catalog *stories.Catalog, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		logger:  slog.Default(),
		httpLog: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Gallery.CacheSize > 0 {
		cache, err := lru.New[string, string](cfg.Gallery.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}

	if cfg.Gallery.Metrics {
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
			s.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		s.metrics = middleware.NewMetrics(middleware.WithRegistry(s.registry))
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.router = s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// LiveSessions returns the number of connected live sessions.
func (s *Server) LiveSessions() int {
	return int(s.live.Load())
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	httpLogger := httplog.NewLogger("vangoui", httplog.Options{
		Writer:          s.httpLog,
		JSON:            false,
		Concise:         true,
		LogLevel:        slog.LevelInfo,
		RequestHeaders:  false,
		QuietDownRoutes: []string{"/healthz", "/metrics"},
		QuietDownPeriod: time.Minute,
	})
	r.Use(httplog.RequestLogger(httpLogger))
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	if s.cfg.Gallery.Tracing {
		r.Use(middleware.OpenTelemetry(
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
			}),
		))
	}

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/stories/{id}", s.handleStory)
	r.Get("/stories/{id}/fragment", s.handleFragment)
	r.Get("/live/{id}", s.handleLive)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"stories": len(s.catalog.List()),
		"live":    s.LiveSessions(),
	})
}

// checkOrigin allows requests without an Origin header, same-origin
// requests and origins listed in Gallery.AllowedOrigins. "*" allows any.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.Gallery.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down within Gallery.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gallery listening", "addr", ln.Addr().String(), "stories", len(s.catalog.List()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	s.logger.Info("gallery shutting down", "live_sessions", s.LiveSessions())
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
