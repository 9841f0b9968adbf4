// Package main implements the entry point for the personas API server,
// which serves persons, their contact data and parent/child relations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/personas-api/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (defaults to ./config.yaml when present)")
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *configPath, *migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "personas-api: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application together. With a migration command it only
// runs that command; otherwise it serves HTTP until a shutdown signal.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database", maskDatabaseURL(cfg.Database.URL)))

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", logger); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment
// variables and the optional config file.
func loadAppConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
