// Package preview serves a rendered layout over HTTP and reloads connected
// browsers when the layout file changes.
package preview

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/forge/internal/config"
	"github.com/vango-dev/forge/internal/site"
	"github.com/vango-dev/forge/pkg/middleware"
)

// Options configures the preview server.
type Options struct {
	Config *config.Config

	// Layout is the layout file to serve.
	Layout string

	Logger *slog.Logger

	// OnRender is called after every render attempt.
	OnRender func(err error)
}

// Server is the preview server.
type Server struct {
	config   *config.Config
	layout   string
	logger   *slog.Logger
	onRender func(error)

	site     *site.Site
	registry *prometheus.Registry
	hub      *Hub
	router   chi.Router

	mu      sync.Mutex
	running bool
	http    *http.Server
}

// NewServer creates a preview server for opts.Layout.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   cfg,
		layout:   opts.Layout,
		logger:   logger,
		onRender: opts.OnRender,
	}

	siteOpts := site.Options{Config: cfg, Logger: logger}
	if cfg.MetricsEnabled() {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		siteOpts.Metrics = middleware.NewMetrics(middleware.WithRegistry(s.registry))
	}
	s.site = site.New(siteOpts)

	if cfg.HotReloadEnabled() {
		s.hub = NewHub()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handlePage)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.hub != nil {
		r.Handle(ReloadPath, s.hub)
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var inject string
	if s.hub != nil {
		inject = ClientScript
	}

	page, err := s.site.Render(r.Context(), s.layout, inject)
	s.rendered(err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(page.HTML)
}

func (s *Server) rendered(err error) {
	if err != nil {
		s.logger.Error("render failed", "layout", s.layout, "error", err)
	}
	if s.onRender != nil {
		s.onRender(err)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// Start serves until ctx is done or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.http = &http.Server{
		Addr:              s.config.PreviewAddress(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	if s.hub != nil {
		w, err := NewWatcher(s.logger, DefaultDebounce, s.layout)
		if err != nil {
			s.logger.Warn("hot reload disabled", "error", err)
		} else {
			go w.Run(ctx, s.changed)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	s.logger.Info("preview server running", "url", s.config.PreviewURL(), "layout", s.layout)

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	if s.hub != nil {
		s.hub.Close()
	}
	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.http.Shutdown(ctx)
	}
}

// changed re-renders the layout and tells browsers to reload, or shows the
// error when the new layout does not build.
func (s *Server) changed(path string) {
	s.logger.Info("layout changed", "path", path)
	_, err := s.site.Render(context.Background(), s.layout, "")
	s.rendered(err)
	if err != nil {
		s.hub.Error(err.Error())
		return
	}
	s.hub.Clear()
	s.hub.Reload()
}
