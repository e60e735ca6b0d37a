package cmd

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"jobly/internal/adapters/out/postgres"
	"jobly/internal/adapters/out/redis"
	"jobly/internal/pkg/errs"
)

const (
	defaultHTTPPort        = "3001"
	defaultDBPort          = "5432"
	defaultDBMaxConns      = 10
	defaultHealthSchedule  = "*/15 * * * * *"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	HTTPPort string

	// DatabaseURL, when set, wins over the DB* fields.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	DBMaxConns  int32

	// RedisAddr empty disables the job cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel        string
	HealthSchedule  string
	ShutdownTimeout time.Duration
}

// LoadConfig reads every setting through getenv (os.Getenv in production).
// All missing or malformed keys are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}

	cfg := Config{
		HTTPPort:        r.string("HTTP_PORT", defaultHTTPPort),
		DatabaseURL:     r.string("DATABASE_URL", ""),
		DBHost:          r.string("DB_HOST", ""),
		DBPort:          r.string("DB_PORT", defaultDBPort),
		DBUser:          r.string("DB_USER", ""),
		DBPassword:      r.string("DB_PASSWORD", ""),
		DBName:          r.string("DB_NAME", ""),
		DBSslMode:       r.string("DB_SSLMODE", "disable"),
		DBMaxConns:      int32(r.int("DB_MAX_CONNS", defaultDBMaxConns)),
		RedisAddr:       r.string("REDIS_ADDR", ""),
		RedisPassword:   r.string("REDIS_PASSWORD", ""),
		RedisDB:         r.int("REDIS_DB", 0),
		CacheTTL:        r.duration("CACHE_TTL", redis.DefaultTTL),
		JWTSecret:       r.required("JWT_SECRET"),
		JWTTTL:          r.duration("JWT_TTL", 0),
		LogLevel:        r.string("LOG_LEVEL", "info"),
		HealthSchedule:  r.string("HEALTH_SCHEDULE", defaultHealthSchedule),
		ShutdownTimeout: r.duration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if cfg.DatabaseURL == "" {
		cfg.DBHost = r.required("DB_HOST")
		cfg.DBUser = r.required("DB_USER")
		cfg.DBName = r.required("DB_NAME")
	}

	return cfg, errors.Join(r.errs...)
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
		MaxConns: c.DBMaxConns,
	}
}

func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.Postgres().DSN()
}

func (c Config) Redis() redis.Config {
	return redis.Config{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) string(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *envReader) required(key string) string {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		r.errs = append(r.errs, errs.NewValueIsRequiredError(key))
	}
	return v
}

func (r *envReader) int(key string, def int) int {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return n
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return d
}
