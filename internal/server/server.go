// Package server composes the Connect services, health and metrics
// endpoints and the optional front end into one HTTP handler.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/service"
	"github.com/mmynk/ecotracker/internal/wastelog"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

const shutdownTimeout = 10 * time.Second

// Deps are the components the server exposes.
type Deps struct {
	Authenticator auth.Authenticator
	Log           *wastelog.Log
	JWT           *auth.JWTManager
	Limiter       *middleware.RateLimiter
	Metrics       *metrics.Metrics
	Logger        *slog.Logger

	// StaticDir, when set, is served at "/" with index.html fallback.
	StaticDir string
	// Ping, when set, backs /healthz.
	Ping func(context.Context) error
}

// Server owns the router for one process.
type Server struct {
	deps Deps
}

// New creates a Server. Nil Logger defaults to slog.Default().
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Server{deps: deps}
}

// Router returns the chi router without transport wrappers.
func (s *Server) Router() http.Handler {
	d := s.deps
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", d.Metrics.Handler())

	// Logging runs outermost so rejected calls are logged and counted.
	public := connect.WithInterceptors(
		middleware.LoggingInterceptor(d.Metrics),
		d.Limiter.Interceptor(),
		middleware.OptionalAuth(d.JWT),
	)
	protected := connect.WithInterceptors(
		middleware.LoggingInterceptor(d.Metrics),
		middleware.RequireAuth(d.JWT),
	)

	r.Mount(protoconnect.NewAuthServiceHandler(
		service.NewAuthService(d.Authenticator, d.JWT, d.Logger, d.Metrics), public))
	r.Mount(protoconnect.NewWasteLogServiceHandler(
		service.NewWasteLogService(d.Log, d.Logger, d.Metrics), protected))
	r.Mount(protoconnect.NewAnalyticsServiceHandler(
		service.NewAnalyticsService(d.Log, d.Logger), protected))

	if d.StaticDir != "" {
		r.Handle("/*", staticHandler(d.StaticDir))
	}

	return r
}

// Handler returns the full handler: CORS and metrics around the router,
// wrapped with h2c for HTTP/2 without TLS (required for Connect streaming
// clients and gRPC peers).
func (s *Server) Handler() http.Handler {
	return h2c.NewHandler(cors(s.deps.Metrics.Instrument(s.Router())), &http2.Server{})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("Connect server starting", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.deps.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.Ping != nil {
		if err := s.deps.Ping(r.Context()); err != nil {
			s.deps.Logger.Warn("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
