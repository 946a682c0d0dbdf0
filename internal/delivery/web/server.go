// Package web serves the server-rendered marketplace site.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"agrifarma/config"
	"agrifarma/internal/delivery"
	"agrifarma/internal/delivery/middleware"
	"agrifarma/internal/delivery/web/flash"
	webmiddleware "agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/delivery/web/router"
	"agrifarma/internal/delivery/web/validator"
	"agrifarma/internal/delivery/web/view"
	"agrifarma/internal/domain/lifecycle"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// CSRFFormField is the hidden input every form carries.
const CSRFFormField = "csrf_token"

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the web server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Flash        *flash.Manager
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}

	echoServer := New(params.Cfg, params.Logger, params.Flash, params.RouterParams.SessionMiddleware, renderer)
	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// New builds the echo instance with the shared middleware chain, without routes.
func New(cfg *config.Config, logger *slog.Logger, flashManager *flash.Manager, session *webmiddleware.SessionMiddleware, renderer echo.Renderer) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Logger middleware
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 4. Security headers and request body size limit
	echoServer.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "same-origin",
	}))
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 5. Flash messages, then CSRF so a rejected form can still flash
	echoServer.Use(flashManager.Middleware)
	echoServer.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper:        func(c echo.Context) bool { return c.Path() == "/health" },
		TokenLookup:    "form:" + CSRFFormField + ",header:" + echo.HeaderXCSRFToken,
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Auth.SecureCookie,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	// 6. Session lookup
	echoServer.Use(session.Load)

	echoServer.HTTPErrorHandler = webmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Renderer = renderer

	return echoServer
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting web server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
