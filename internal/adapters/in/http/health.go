package http

import (
	"net/http"

	"jobly/internal/jobs"

	"github.com/labstack/echo/v4"
)

// Health handles GET /health with the last results of the background checks.
// Anything but ok answers 503.
func (s *Server) Health(ctx echo.Context) error {
	overall, checks := s.health.Snapshot()

	resp := healthResponse{Status: overall, Checks: make([]healthCheckResponse, len(checks))}
	for i, c := range checks {
		resp.Checks[i] = healthCheckResponse{Component: c.Component, Status: c.Status, Error: c.Error}
		if !c.CheckedAt.IsZero() {
			at := c.CheckedAt
			resp.Checks[i].CheckedAt = &at
		}
	}

	status := http.StatusOK
	if overall != jobs.StatusOK {
		status = http.StatusServiceUnavailable
	}
	return ctx.JSON(status, resp)
}
