package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and the store answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(ctx); err != nil {
			s.Logger.Error("healthcheck: database ping failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "UNAVAILABLE",
				"database": "unreachable",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "OK",
	})
}
