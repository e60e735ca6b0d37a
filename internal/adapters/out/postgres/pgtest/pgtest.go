// Package pgtest starts a migrated PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"time"

	pgadapter "jobly/internal/adapters/out/postgres"
	"jobly/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const image = "postgres:15-alpine"

// Database is a running container with an open, migrated connection.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *pgadapter.DB
	DSN       string
}

func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := pgadapter.ConnectDSN(ctx, dsn, 0)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = pgadapter.NewMigrator(migrations.FS).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table and resets the job id sequence.
func (d *Database) Truncate(ctx context.Context) error {
	_, err := d.DB.Pool().Exec(ctx, `TRUNCATE TABLE jobs, companies RESTART IDENTITY CASCADE`)
	return err
}

// Stop closes the connection and terminates the container.
func (d *Database) Stop(ctx context.Context) error {
	if d == nil {
		return nil
	}
	_ = d.DB.Close()
	return d.Container.Terminate(ctx)
}
