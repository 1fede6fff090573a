// Package http is the echo based HTTP delivery.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"marketplace/config"
	"marketplace/internal/delivery"
	custommw "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router"
	"marketplace/internal/delivery/http/validator"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	Metrics             *metrics.Metrics
	RequestIDMiddleware *custommw.RequestIDMiddleware
	LoggerMiddleware    *custommw.LoggerMiddleware
	ErrorMiddleware     *custommw.ErrorMiddleware
	RouterParams        router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho builds the echo instance with middlewares and routes registered.
func NewEcho(params HTTPParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(middleware.Recover())
	e.Use(params.RequestIDMiddleware.Process)
	e.Use(params.LoggerMiddleware.Handle)
	e.Use(middleware.CORS())
	if limit := params.Config.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(middleware.BodyLimit(limit))
	}
	e.Use(params.Metrics.Middleware)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e := NewEcho(params)

	timeouts := params.Config.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
