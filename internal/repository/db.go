package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const migration = `
CREATE TABLE IF NOT EXISTS receipts (
	id                TEXT PRIMARY KEY,
	vendor            TEXT NOT NULL,
	tx_date           TEXT NOT NULL,
	amount            REAL NOT NULL,
	category          TEXT NOT NULL,
	original_filename TEXT NOT NULL DEFAULT '',
	created_at        TEXT NOT NULL,
	updated_at        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_receipts_vendor   ON receipts(vendor);
CREATE INDEX IF NOT EXISTS idx_receipts_tx_date  ON receipts(tx_date);
CREATE INDEX IF NOT EXISTS idx_receipts_category ON receipts(category);
`

// Open opens (or creates) the SQLite database at path and applies the
// schema migration. Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path string, dialTimeout time.Duration, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening database", "path", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, migration); err != nil {
		_ = db.Close()
		logger.Error("failed to apply migration", "error", err)
		return nil, fmt.Errorf("apply migration: %w", err)
	}

	logger.Info("database ready")
	return db, nil
}

// Close closes the database gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("database closed")
}

// HealthCheck pings the database, bounded by timeout when positive.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
