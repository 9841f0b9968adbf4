package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	// MigrationsDir is the directory of the embedded migration files.
	MigrationsDir = "migrations"

	// MigrationTableName is the table goose uses to track applied migrations.
	MigrationTableName = "schema_migrations"
)

// ErrUnknownMigrationCommand is returned for commands RunMigrations does not support.
var ErrUnknownMigrationCommand = errors.New("unknown migration command")

// MigrationCommands lists the commands accepted by RunMigrations.
var MigrationCommands = []string{"up", "down", "status", "version"}

// RunMigrations executes a goose command against db using the embedded
// migration files. A nil logger keeps goose's current logger.
// goose keeps its settings in package state, so calls must not overlap.
func RunMigrations(ctx context.Context, db *sql.DB, command string, logger goose.Logger) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(MigrationTableName)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, MigrationsDir)
	case "version":
		err = goose.VersionContext(ctx, db, MigrationsDir)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMigrationCommand, command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}

// MigrationFiles returns the names of the embedded migration files in order.
func MigrationFiles() ([]string, error) {
	entries, err := migrationsFS.ReadDir(MigrationsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
