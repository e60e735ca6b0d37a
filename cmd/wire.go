//go:build wireinject
// +build wireinject

package cmd

import (
	"context"

	jobhttp "jobly/internal/adapters/in/http"
	"jobly/internal/jobs"
	"jobly/internal/pkg/logging"

	"github.com/google/wire"
)

// InitializeApp wires the service from cfg. The returned cleanup closes
// Redis and then the database.
func InitializeApp(ctx context.Context, cfg Config, log *logging.Logger) (*App, func(), error) {
	wire.Build(
		// Infrastructure
		provideDB,
		provideCache,

		// Use cases
		NewCompositionRoot,

		// HTTP
		provideAuth,
		provideOpenAPI,
		provideServer,
		jobhttp.NewEcho,

		// Background jobs
		jobs.NewHealthStatus,
		provideJobManager,

		newApp,
	)

	return nil, nil, nil
}
