package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"jobly/internal/jobs"
	"jobly/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// App is the assembled service: the HTTP server and its background jobs.
type App struct {
	cfg  Config
	echo *echo.Echo
	jobs *jobs.JobManager
	log  *logging.Logger
}

func newApp(cfg Config, e *echo.Echo, manager *jobs.JobManager, log *logging.Logger) *App {
	return &App{
		cfg:  cfg,
		echo: e,
		jobs: manager,
		log:  log,
	}
}

// Start binds the port and starts the jobs, then serves in the background.
// Bind and job errors are returned; later serve errors are logged.
func (a *App) Start() error {
	addr := fmt.Sprintf("0.0.0.0:%s", a.cfg.HTTPPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	if err = a.jobs.StartAll(); err != nil {
		_ = ln.Close()
		return err
	}

	a.echo.Listener = ln
	go func() {
		if err := a.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server stopped", "error", err)
		}
	}()

	a.log.Info("http server listening", "addr", addr)
	return nil
}

// Shutdown stops accepting requests, drains in-flight ones, then stops the jobs.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.echo.Shutdown(ctx)
	a.jobs.StopAll()
	return err
}
