package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"credit-backoffice/internal/config"
)

const defaultMigrationsPath = "db/migrations"

var ErrMigrationsNotFound = errors.New("migrations directory not found")

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations under db/migrations
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
}

// NewMigrationRunner creates a runner; an empty path means db/migrations
func NewMigrationRunner(db *sql.DB, migrationsPath string) *MigrationRunner {
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
	}
}

// WaitForDatabase pings until the database answers, the retries run out or
// the context is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			slog.Info("Database is ready", "attempts", i+1)
			return nil
		}

		slog.Warn("Database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations. A missing migrations
// directory is an error so the caller can fall back to AutoMigrate.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("Database is in dirty migration state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("Applied migrations", "from_version", version, "to_version", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration version
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs migrations when AUTO_MIGRATE is on
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		slog.Info("Auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(maxRetries)*retryInterval+time.Minute)
	defer cancel()

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if version, dirty, err := runner.GetMigrationStatus(); err != nil {
		slog.Warn("failed to get migration status", "error", err)
	} else {
		slog.Info("Migration status", "version", version, "dirty", dirty)
	}

	return nil
}
