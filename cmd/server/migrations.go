package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/phrazzld/personas-api/internal/platform/postgres"
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. It does not exit; the error returned by goose
// reaches main, which decides how to exit.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations executes a goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("%w: %q (expected one of %s)",
			postgres.ErrUnknownMigrationCommand, command, strings.Join(postgres.MigrationCommands, ", "))
	}

	migrationLogger := logger.With(slog.String("component", "migrations"))
	migrationLogger.Info("Executing migrations", slog.String("command", command))

	if err := postgres.RunMigrations(ctx, db, command, &slogGooseLogger{logger: migrationLogger}); err != nil {
		migrationLogger.Error("Migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return err
	}

	migrationLogger.Info("Migrations completed", slog.String("command", command))
	return nil
}

// maskDatabaseURL masks the password in a database URL for safe logging.
func maskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsedURL.User != nil {
		if _, hasPassword := parsedURL.User.Password(); hasPassword {
			parsedURL.User = url.UserPassword(parsedURL.User.Username(), "****")
		}
		return parsedURL.String()
	}

	return dbURL
}
