// Package migration wraps golang-migrate for schema management of the
// storefront database.
package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator applies SQL migrations from a directory to a PostgreSQL database.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// New builds a Migrator over an open database handle. The caller keeps
// ownership of db until Close is called.
func New(db *sql.DB, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	return m.apply("up", m.migrate.Up)
}

// Down rolls back all applied migrations.
func (m *Migrator) Down() error {
	return m.apply("down", m.migrate.Down)
}

// Steps applies n migrations, rolling back when n is negative.
func (m *Migrator) Steps(n int) error {
	return m.apply(fmt.Sprintf("steps(%d)", n), func() error {
		return m.migrate.Steps(n)
	})
}

// apply runs a migration operation, treating ErrNoChange as success.
func (m *Migrator) apply(op string, fn func() error) error {
	m.logger.Info("applying migrations", zap.String("op", op))

	if err := fn(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("database already up to date", zap.String("op", op))
			return nil
		}
		return fmt.Errorf("migration %s failed: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.logger.Info("migrations applied",
		zap.String("op", op),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Version returns the current schema version. A fresh database reports
// version 0 with no error.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version without running migrations. Only
// useful for recovering a dirty schema_migrations row.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("forcing migration version", zap.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// Close releases the source and database handles held by the migrator.
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
