package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cfg "subs_manager/internal/config"
	"subs_manager/internal/entity"
	"subs_manager/internal/gateways/http/mw"
	"subs_manager/internal/metrics"
	"subs_manager/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Server holds HTTP server address, router, logger, and graceful shutdown settings.
type Server struct {
	host            string
	port            uint16
	shutdownTimeout time.Duration
	router          *gin.Engine
	log             *slog.Logger
	srv             *http.Server
}

// EffectDispatcher runs the side effects of a committed mutation
type EffectDispatcher interface {
	Dispatch(ctx context.Context, effects []entity.Effect)
}

// UseCases bundles application use cases injected into HTTP handlers.
type UseCases struct {
	Sub      *usecase.Subscription
	Catalog  *usecase.Catalog
	Settings *usecase.Settings
	Calendar *usecase.Calendar
	// Effects may be nil, effects are then dropped
	Effects EffectDispatcher
	// Now stamps generated calendar files, time.Now when nil
	Now func() time.Time
}

func (u UseCases) now() time.Time {
	if u.Now != nil {
		return u.Now().UTC()
	}
	return time.Now().UTC()
}

// Observability carries the metrics sink and the registry served on /metrics.
// The zero value disables both.
type Observability struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// New constructs a Server with defaults, applies options, and wires the Gin router.
func New(useCases UseCases, c cfg.Config, log *slog.Logger, obs Observability, options ...func(server *Server)) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	s := &Server{
		host:            "localhost",
		port:            8080,
		router:          SetupGin(c, useCases, log, obs),
		log:             log,
		shutdownTimeout: 5 * time.Second,
	}

	for _, o := range options {
		o(s)
	}

	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 5 * time.Second
	}

	return s
}

// WithHost returns an option that sets the server host.
func WithHost(host string) func(*Server) {
	return func(s *Server) {
		if host != "" {
			s.host = host
		}
	}
}

// WithPort returns an option that sets the server port.
func WithPort(port uint16) func(*Server) {
	return func(s *Server) {
		if port != 0 {
			s.port = port
		}
	}
}

// WithTimeout returns an option that sets the graceful shutdown timeout.
func WithTimeout(timeout time.Duration) func(server *Server) {
	return func(s *Server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

// SetupGin configures Gin mode, middleware, CORS, and routes from the provided config.
func SetupGin(c cfg.Config, useCases UseCases, log *slog.Logger, obs Observability) *gin.Engine {
	switch c.Env {
	case envLocal, envDev:
		gin.SetMode(gin.DebugMode)
	case envProd:
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(mw.RecoveryWithSlog(log))
	r.Use(mw.GinSlog(log))
	if obs.Metrics != nil {
		r.Use(mw.Prometheus(obs.Metrics))
	}
	r.Use(mw.RateLimit(c.Server.RateLimit.RPS, c.Server.RateLimit.Burst))

	origins := c.Server.CORSOrigins
	if len(origins) == 0 {
		origins = buildAllowedOrigins(c)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Retry-After", "Content-Disposition"},
		AllowCredentials: true,
	}))

	if obs.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(obs.Gatherer, promhttp.HandlerOpts{})))
	}

	setupRouter(r, useCases)
	return r
}

// buildAllowedOrigins derives default allowed CORS origins from the server host and the UI port.
func buildAllowedOrigins(c cfg.Config) []string {
	host := c.Server.Host
	if host == "" {
		host = "127.0.0.1"
	}
	uiPort := os.Getenv("UI_PORT_HOST")
	if uiPort == "" {
		uiPort = "3000"
	}

	return []string{
		fmt.Sprintf("http://%s:%s", host, uiPort),
		fmt.Sprintf("https://%s:%s", host, uiPort),
	}
}

// Run starts the HTTP server, listens for context cancellation, and shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.srv = srv

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		<-errCh
		s.log.Info("server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

// Close gracefully shuts down the underlying HTTP server if it is running.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
