package cmd

import (
	"context"
	"fmt"
	"time"

	"jobly/api"
	jobhttp "jobly/internal/adapters/in/http"
	"jobly/internal/adapters/out/postgres"
	"jobly/internal/adapters/out/redis"
	"jobly/internal/jobs"
	"jobly/internal/pkg/auth"
	"jobly/internal/pkg/logging"
	"jobly/migrations"

	"github.com/getkin/kin-openapi/openapi3"
	goredis "github.com/redis/go-redis/v9"
)

const healthCheckTimeout = 2 * time.Second

// provideDB connects and brings the schema up to date.
func provideDB(ctx context.Context, cfg Config, log *logging.Logger) (*postgres.DB, func(), error) {
	db, err := postgres.ConnectDSN(ctx, cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = postgres.NewMigrator(migrations.FS).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready")

	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}, nil
}

// provideCache returns nil when no Redis address is configured or Redis is
// unreachable at startup; the service then runs uncached.
func provideCache(ctx context.Context, cfg Config, log *logging.Logger) (goredis.UniversalClient, func(), error) {
	if !cfg.CacheEnabled() {
		log.Info("job cache disabled")
		return nil, func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis())
	if err != nil {
		log.Warn("job cache unavailable, running without it", "error", err)
		return nil, func() {}, nil
	}
	log.Info("job cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", "error", err)
		}
	}, nil
}

func provideAuth(cfg Config) (*auth.Service, error) {
	return auth.NewService(cfg.JWTSecret, cfg.JWTTTL)
}

func provideOpenAPI(ctx context.Context) (*openapi3.T, error) {
	return api.Load(ctx)
}

func provideJobManager(
	cfg Config,
	status *jobs.HealthStatus,
	db *postgres.DB,
	cache goredis.UniversalClient,
	log *logging.Logger,
) *jobs.JobManager {
	checks := []jobs.Job{
		jobs.NewHealthCheckJob("postgres", db.Ping, status, cfg.HealthSchedule, healthCheckTimeout, log),
	}
	if cache != nil {
		checks = append(checks, jobs.NewHealthCheckJob("redis", func(ctx context.Context) error {
			return cache.Ping(ctx).Err()
		}, status, cfg.HealthSchedule, healthCheckTimeout, log))
	}
	return jobs.NewJobManager(log, checks...)
}

func provideServer(root CompositionRoot, status *jobs.HealthStatus) *jobhttp.Server {
	return jobhttp.NewServer(
		root.CreateCreateJobCommandHandler(),
		root.CreateUpdateJobCommandHandler(),
		root.CreateDeleteJobCommandHandler(),
		root.CreateCreateCompanyCommandHandler(),
		root.CreateUpdateCompanyCommandHandler(),
		root.CreateDeleteCompanyCommandHandler(),
		root.CreateGetJobQueryHandler(),
		root.CreateListJobsQueryHandler(),
		root.CreateGetCompanyQueryHandler(),
		root.CreateListCompaniesQueryHandler(),
		status,
	)
}
