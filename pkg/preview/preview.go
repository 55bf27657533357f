package preview

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/bfkr/alerts"
	"github.com/bfkr/alerts/internal/errors"
	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/loop"
	"github.com/bfkr/alerts/pkg/metrics"
	"github.com/bfkr/alerts/pkg/render"
)

// TracerName is the OpenTelemetry instrumentation name.
const TracerName = "github.com/bfkr/alerts/pkg/preview"

// Config configures a Server.
type Config struct {
	// Addr is the listen address for Run, e.g. "localhost:3400".
	Addr string

	// Title is the page title.
	Title string

	// Metrics exposes GET /metrics.
	Metrics bool

	// Settings seeds colors, position and themes.
	Settings alerts.Settings

	// ToastDuration is used when a toast request omits duration.
	ToastDuration time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// ShutdownTimeout bounds graceful shutdown. Defaults to 5s.
	ShutdownTimeout time.Duration
}

// Server hosts one shared tree and its engines.
type Server struct {
	config   Config
	logger   *slog.Logger
	loop     *loop.Loop
	tree     *dom.Tree
	alerts   *alerts.Alerts
	hub      *hub
	renderer *render.Renderer
	tracer   trace.Tracer
	registry *prometheus.Registry
	router   chi.Router

	// version is the last broadcast tree version. Loop only.
	version uint64
}

// New creates a Server. The loop does not run until Run (or Loop().Run) is
// called.
func New(config Config) *Server {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Title == "" {
		config.Title = "bfkr preview"
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "preview"),
		tree:     dom.NewTree(),
		hub:      newHub(),
		renderer: render.NewRenderer(render.RendererConfig{}),
		tracer:   otel.Tracer(TracerName),
		registry: prometheus.NewRegistry(),
	}
	s.loop = loop.New(s.logger, 0)
	s.loop.AfterEach(s.flush)

	s.alerts = alerts.New(s.tree, clock.Real(s.loop),
		alerts.WithLogger(s.logger),
		alerts.WithRecorder(metrics.Prometheus(metrics.WithRegistry(s.registry))),
		alerts.WithSettings(config.Settings),
	)
	s.version = s.tree.Version()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Route("/api", func(r chi.Router) {
		r.Post("/toast", s.handleToast)
		r.Post("/dialog", s.handleDialog)
		r.Get("/colors", s.handleGetColors)
		r.Put("/colors", s.handlePutColors)
	})
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Loop returns the loop that owns the tree and engines.
func (s *Server) Loop() *loop.Loop {
	return s.loop
}

// Tree returns the shared tree. Only touch it from the loop.
func (s *Server) Tree() *dom.Tree {
	return s.tree
}

// Alerts returns the engines. Only touch them from the loop.
func (s *Server) Alerts() *alerts.Alerts {
	return s.alerts
}

// Clients returns the number of connected browsers.
func (s *Server) Clients() int {
	return s.hub.count()
}

// Run serves on config.Addr and runs the loop until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.New("E200").
			WithDetail("Cannot listen on " + s.config.Addr).
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.loop.Run(gctx)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		s.logger.Info("preview listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New("E200").Wrap(err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.hub.close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("preview shutdown", "error", err)
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info("preview stopped")
	return err
}

// flush broadcasts the body after any callback that changed the tree.
func (s *Server) flush() {
	v := s.tree.Version()
	if v == s.version {
		return
	}
	s.version = v

	if s.hub.count() == 0 {
		return
	}
	html, err := s.body()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	s.hub.broadcast(Message{Type: MessageHTML, HTML: html})
}

// body renders the children of the tree's body. Loop only.
func (s *Server) body() (string, error) {
	var b strings.Builder
	if err := s.renderer.RenderChildren(&b, s.tree.Root()); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	var renderErr error
	err := s.loop.Call(r.Context(), func() {
		renderErr = s.renderer.RenderPage(&b, render.PageData{
			Body:   s.tree.Root(),
			Title:  s.config.Title,
			Styles: []string{Stylesheet},
			Script: ClientScript,
		})
	})
	if err != nil {
		s.writeError(w, loopError(err))
		return
	}
	if renderErr != nil {
		s.logger.Error("render failed", "error", renderErr)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

func loopError(err error) *errors.Error {
	return errors.New("E203").Wrap(err)
}
