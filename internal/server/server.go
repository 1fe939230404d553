package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/passport-scorer/scorer-ui/internal/config"
	uierrors "github.com/passport-scorer/scorer-ui/internal/errors"
	"github.com/passport-scorer/scorer-ui/pkg/assets"
	"github.com/passport-scorer/scorer-ui/pkg/footer"
	"github.com/passport-scorer/scorer-ui/pkg/render"
	"github.com/passport-scorer/scorer-ui/web"
)

// Options configures a Server.
type Options struct {
	// Config is the loaded configuration. Required.
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the server's metrics and backs /metrics. Defaults
	// to a fresh prometheus.NewRegistry().
	Registry *prometheus.Registry

	// Static is the public file tree. Defaults to the embedded web.Public().
	Static fs.FS
}

// Server is the footer HTTP service.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	router   chi.Router
	footer   *footer.Footer
	resolver assets.Resolver
	renderer *render.Renderer
	metrics  *Metrics
	registry *prometheus.Registry
	static   *staticFiles
	upgrader websocket.Upgrader
}

// New creates a Server. It fails only when a configured asset manifest
// cannot be loaded.
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	staticFS := opts.Static
	if staticFS == nil {
		staticFS = web.Public()
	}

	manifest := assets.NewManifest()
	if cfg.Static.Manifest != "" {
		m, err := assets.Load(cfg.Static.Manifest)
		if err != nil {
			return nil, uierrors.New("E104").
				WithDetail("Could not load " + cfg.Static.Manifest).
				Wrap(err)
		}
		manifest = m
	}
	resolver := assets.NewResolver(manifest, cfg.Static.Prefix)

	s := &Server{
		config:   cfg,
		logger:   logger,
		footer:   footer.New(resolver),
		resolver: resolver,
		renderer: render.NewRenderer(render.RendererConfig{}),
		registry: registry,
		static:   newStaticFiles(staticFS, cfg.Static, manifest),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	if cfg.Metrics.Enabled {
		s.metrics = NewMetrics(registry, cfg.Metrics.Namespace)
	}

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleIndex)
	r.Get("/footer", s.handleFooter)
	r.Get("/footer/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Method(http.MethodGet, s.config.Static.Prefix+"*", http.HandlerFunc(s.static.serve))
	r.Method(http.MethodHead, s.config.Static.Prefix+"*", http.HandlerFunc(s.static.serve))

	if s.metrics != nil {
		r.Method(http.MethodGet, s.config.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return uierrors.New("E300").WithDetail("Could not listen on " + s.config.Address()).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return uierrors.New("E300").Wrap(err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return uierrors.New("E301").Wrap(err)
	}
	return nil
}
