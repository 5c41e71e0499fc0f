// Package database provides Postgres storage for business records and
// the assessment log.
package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sme-financial-health/internal/config"
)

const connectTimeout = 10 * time.Second

// Schema creates the tables used by the repositories.
const Schema = `
CREATE TABLE IF NOT EXISTS businesses (
	business_id           TEXT PRIMARY KEY,
	industry_type         TEXT NOT NULL DEFAULT '',
	annual_revenue        DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_expenses        DOUBLE PRECISION NOT NULL DEFAULT 0,
	current_assets        DOUBLE PRECISION,
	current_liabilities   DOUBLE PRECISION,
	total_assets          DOUBLE PRECISION,
	total_liabilities     DOUBLE PRECISION,
	inventory             DOUBLE PRECISION,
	accounts_receivable   DOUBLE PRECISION,
	current_ratio         DOUBLE PRECISION,
	quick_ratio           DOUBLE PRECISION,
	debt_equity_ratio     DOUBLE PRECISION,
	dscr                  DOUBLE PRECISION,
	roce                  DOUBLE PRECISION,
	days_inventory        DOUBLE PRECISION,
	days_receivables      DOUBLE PRECISION,
	days_payables         DOUBLE PRECISION,
	gst_compliance_status TEXT NOT NULL DEFAULT '',
	financial_health_score DOUBLE PRECISION,
	source                TEXT NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS assessments (
	id            BIGSERIAL PRIMARY KEY,
	business_id   TEXT NOT NULL,
	health_score  INTEGER NOT NULL,
	risk_category TEXT NOT NULL,
	credit_score  INTEGER NOT NULL,
	source        TEXT NOT NULL DEFAULT '',
	analysis      JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_assessments_business ON assessments (business_id, created_at DESC);
`

// DB holds the database connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection.
func New(ctx context.Context, cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Lambdas hold one connection; the server keeps a small pool.
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		poolConfig.MaxConns = 2
		poolConfig.MinConns = 0
	}
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// NewFromURL creates a new database connection from a URL string.
func NewFromURL(ctx context.Context, databaseURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Migrate creates any missing tables.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// HealthCheck verifies database connectivity.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// ExecContext executes a query that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	result, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

// WithTransaction executes a function within a transaction.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
