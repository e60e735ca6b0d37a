package main

import (
	"context"
	"os"
	"syscall"

	"jobly/cmd"
	"jobly/internal/pkg/logging"
	"jobly/internal/pkg/shutdown"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	app, cleanup, err := cmd.InitializeApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err = app.Start(); err != nil {
		logger.Error("failed to start", "error", err)
		cleanup()
		os.Exit(1)
	}

	shutdown.Graceful([]os.Signal{os.Interrupt, syscall.SIGTERM}, app, cfg.ShutdownTimeout, logger)
}
