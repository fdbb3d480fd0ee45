// internal/migrate/migrate.go
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

// Migration is one forward-only schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Migrator applies the CRM schema to a postgres database.
type Migrator struct {
	DB         *sql.DB
	Migrations []Migration
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db, Migrations: Migrations}
}

// InitializeSchema creates the version bookkeeping table.
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_versions (
		version INT PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return fmt.Errorf("creating schema_versions: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied version, 0 on a fresh database.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.DB.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// Up applies every migration above the current version, each in its own
// transaction, and returns the versions it applied.
func (m *Migrator) Up(ctx context.Context) ([]int, error) {
	if err := m.InitializeSchema(ctx); err != nil {
		return nil, err
	}

	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return nil, err
	}

	var applied []int
	for _, mig := range m.Migrations {
		if mig.Version <= current {
			continue
		}

		if err := m.apply(ctx, mig); err != nil {
			return applied, err
		}
		slog.InfoContext(ctx, "Applied migration", "version", mig.Version, "description", mig.Description)
		applied = append(applied, mig.Version)
	}

	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("applying migration %d: %w", mig.Version, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_versions (version, description) VALUES ($1, $2)`,
		mig.Version, mig.Description,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording migration %d: %w", mig.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", mig.Version, err)
	}
	return nil
}
