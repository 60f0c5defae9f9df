package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"washapp/config"
	"washapp/internal/delivery"
	apimiddleware "washapp/internal/delivery/api/middleware"
	"washapp/internal/delivery/api/router"
	"washapp/internal/delivery/api/validator"
	"washapp/internal/delivery/middleware"
	"washapp/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the booking API.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	engine := newEngine(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(engine)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: engine,
	}
	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEngine builds echo with the middleware every washapp route shares. Panics are
// recovered first and the request id is assigned before the access log reads it.
// JSON bodies are capped at HTTP.MaxRequestBodySize; image uploads skip that cap and
// are bounded by the blob upload size in the catalog and profile usecases.
func newEngine(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Limit:   cfg.HTTP.MaxRequestBodySize,
			Skipper: isUploadRoute,
		}),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// isUploadRoute matches PUT .../picture (profile) and PUT .../image (catalog service).
func isUploadRoute(c echo.Context) bool {
	req := c.Request()
	if req.Method != http.MethodPut {
		return false
	}

	return strings.HasSuffix(req.URL.Path, "/picture") || strings.HasSuffix(req.URL.Path, "/image")
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Booking API listening", slog.String("host_port", hostPort))

	h2c := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.server.StartH2CServer(hostPort, h2c); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Booking API draining connections")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
