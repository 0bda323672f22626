package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// newPool creates a bounded connection pool for one principal and pings it to
// verify connectivity.
func newPool(ctx context.Context, connString string, maxConns int32, cfg *Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetimeSeconds) * time.Second
	poolConfig.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTimeSeconds) * time.Second
	poolConfig.ConnConfig.ConnectTimeout = time.Duration(cfg.ConnectTimeoutSeconds) * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug().
		Str("database", poolConfig.ConnConfig.Database).
		Str("user", poolConfig.ConnConfig.User).
		Int32("max_conns", maxConns).
		Msg("Connected to PostgreSQL")

	return pool, nil
}

// Store holds the two principal pools. All operations go through one of the
// execution handles returned by WithAdmin or WithTenantContext.
type Store struct {
	admin *pgxpool.Pool
	app   *pgxpool.Pool
	cfg   *Config
}

// Open validates the configuration, connects both principal pools and
// optionally runs migrations on the administrative pool.
//
// The administrative pool is opened first so migrations can create the
// application role before the application pool authenticates as it.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	admin, err := newPool(ctx, cfg.AdminURL, cfg.AdminMaxConns, cfg)
	if err != nil {
		return nil, fmt.Errorf("administrative pool: %w", err)
	}

	if cfg.AutoMigrate {
		if err := runMigrations(ctx, admin); err != nil {
			admin.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	app, err := newPool(ctx, cfg.AppURL, cfg.AppMaxConns, cfg)
	if err != nil {
		admin.Close()
		return nil, fmt.Errorf("application pool: %w", err)
	}

	return &Store{admin: admin, app: app, cfg: cfg}, nil
}

// Close releases both pools.
func (s *Store) Close() {
	s.app.Close()
	s.admin.Close()
}
