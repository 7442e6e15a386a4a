package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wallet-burner/internal/config"
	"wallet-burner/internal/handlers"
	"wallet-burner/internal/middleware"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Static *handlers.StaticHandler
	Asset  *handlers.AssetHandler
	Burn   *handlers.BurnHandler
	Health *handlers.HealthCheckHandler
}

// Server wraps the Echo instance and its listener.
type Server struct {
	echo     *echo.Echo
	listener net.Listener
	cfg      *config.Config
}

// New builds the Echo application: validator, error handler, the middleware
// chain, and all routes.
func New(cfg *config.Config, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	e.GET("/", h.Static.Index)
	e.GET("/static/*", echo.WrapHandler(h.Static.Static()))
	e.GET("/assets", h.Asset.GetAssets)
	e.POST("/burn", h.Burn.Burn)
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{echo: e, cfg: cfg}
}

// Start binds a listener and serves until the context is cancelled or the
// server fails. If the preferred port is taken, successive ports are probed.
func (s *Server) Start(ctx context.Context) error {
	listener, port, err := s.listen()
	if err != nil {
		return err
	}
	s.listener = listener

	slog.Info("server listening",
		"host", s.cfg.Server.Host,
		"port", port,
		"network", s.cfg.Solana.Network,
		"environment", s.cfg.Server.Environment)

	errCh := make(chan error, 1)
	go func() {
		s.echo.Listener = listener
		errCh <- s.echo.Start("")
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// listen tries the configured port first, then up to PortScanRange ports
// above it. Local dev machines often have 8080 occupied.
func (s *Server) listen() (net.Listener, int, error) {
	base, err := strconv.Atoi(s.cfg.Server.Port)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid port %q: %w", s.cfg.Server.Port, err)
	}

	for offset := 0; offset <= s.cfg.Server.PortScanRange; offset++ {
		port := base + offset
		addr := net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(port))
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			if offset > 0 {
				slog.Warn("preferred port occupied, moved up",
					"preferred", base,
					"port", port)
			}
			return listener, port, nil
		}
	}

	return nil, 0, fmt.Errorf("no free port in range %d-%d", base, base+s.cfg.Server.PortScanRange)
}

func (s *Server) shutdown() error {
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.WriteTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
