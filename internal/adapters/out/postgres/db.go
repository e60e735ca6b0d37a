// Package postgres connects to PostgreSQL and keeps its schema current.
//
// One pgx pool serves the whole process. The job repository talks to it
// directly, while GORM and the migration runner share it through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ErrNilDB = errors.New("nil db")

const defaultPingTimeout = 5 * time.Second

// Config holds the connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// DSN renders the settings as a libpq keyword/value connection string.
func (c Config) DSN() string {
	sslMode := strings.TrimSpace(c.SSLMode)
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(strings.TrimSpace(c.Host)),
		dsnValue(strings.TrimSpace(c.Port)),
		dsnValue(strings.TrimSpace(c.User)),
		dsnValue(c.Password),
		dsnValue(strings.TrimSpace(c.Name)),
		dsnValue(sslMode),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// dsnValue single-quotes v for a keyword/value connection string.
func dsnValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DB bundles the pool with the database/sql and GORM handles opened over it.
type DB struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	gorm  *gorm.DB
}

// Connect opens the pool from cfg and pings it.
func Connect(ctx context.Context, cfg Config) (*DB, error) {
	return ConnectDSN(ctx, cfg.DSN(), cfg.MaxConns)
}

// ConnectDSN is Connect for a ready connection string. maxConns <= 0 keeps the pgx default.
func ConnectDSN(ctx context.Context, dsn string, maxConns int32) (*DB, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		pcfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, defaultPingTimeout)
		defer cancel()
	}
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &DB{pool: pool, sqlDB: sqlDB, gorm: gdb}, nil
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) SQLDB() *sql.DB {
	return db.sqlDB
}

func (db *DB) Gorm() *gorm.DB {
	return db.gorm
}

func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return ErrNilDB
	}
	return db.pool.Ping(ctx)
}

func (db *DB) Close() error {
	if db == nil {
		return nil
	}
	if db.sqlDB != nil {
		_ = db.sqlDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}
