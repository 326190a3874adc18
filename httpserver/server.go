package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/metrics"
	"moviecatalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// RateLimit is the per-IP request rate; zero or less disables limiting.
	RateLimit float64

	Logger *slog.Logger

	// DB, when set, is pinged by the health check.
	DB Pinger

	MovieService movie.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		AllowOrigins: parseOrigins(cfg.AllowOrigins),
		RateLimit:    cfg.RateLimit,
		Logger:       slog.Default(),
	}
	if cfg.Port == 0 {
		s.Addr = ":8080"
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.JSONSerializer = JSONSerializer{}
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()

	api := s.Router.Group("/api/v1/theater")
	s.RegisterMovieRoutes(api)

	s.RegisterHealthRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(s.requestLogger())
	s.Router.Use(metricsMiddleware)
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(s.RateLimit))))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		}))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				status = httpStatus(v.Error)
			}
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			switch {
			case v.Error == nil:
			case status >= http.StatusInternalServerError:
				s.Logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			default:
				// 4xx is the caller's mistake, not ours
				s.Logger.Warn("request rejected", append(attrs, "error", v.Error)...)
				return nil
			}
			s.Logger.Info("request", attrs...)
			return nil
		},
	})
}

func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = httpStatus(err)
		}
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))
		return err
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// httpStatus maps application errors to HTTP status codes.
func httpStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusUnprocessableEntity
	case errs.ENOTFOUND:
		return http.StatusNotFound
	case errs.ECONFLICT:
		return http.StatusConflict
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func customHTTPErrorHandler(err error, c echo.Context) {
	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	code := httpStatus(err)
	var body interface{}

	var he *echo.HTTPError
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		body = ve
	case errors.As(err, &he):
		body = ErrorResponse{Detail: fmt.Sprint(he.Message)}
	case code >= http.StatusInternalServerError:
		body = ErrorResponse{Detail: "Internal server error"}
	default:
		body = ErrorResponse{Detail: errs.ErrorMessage(err)}
	}

	if code >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
