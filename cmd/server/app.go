package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/config"
	"github.com/phrazzld/personas-api/internal/platform/metrics"
	"github.com/phrazzld/personas-api/internal/platform/postgres"
	"github.com/phrazzld/personas-api/internal/service"
	"github.com/phrazzld/personas-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// nil when metrics are disabled
	metrics *metrics.Registry

	personStore       store.PersonStore
	contactStore      store.ContactStore
	relationshipStore store.RelationshipStore

	personsService      service.PersonsService
	contactService      *service.ContactService
	relationshipService service.RelationshipService
}

// newApplication creates the stores and services on top of an established
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil || logger == nil || db == nil {
		return nil, fmt.Errorf("config, logger and database are required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.NewRegistry()
		if err := app.metrics.RegisterDB(db, "personas"); err != nil {
			return nil, fmt.Errorf("failed to register database metrics: %w", err)
		}
	}

	app.personStore = postgres.NewPostgresPersonStore(db, logger)
	app.contactStore = postgres.NewPostgresContactStore(db, logger)
	app.relationshipStore = postgres.NewPostgresRelationshipStore(db, logger)
	runTx := store.NewTxRunner(db)

	var err error
	app.personsService, err = service.NewPersonsService(app.personStore, app.contactStore, runTx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create persons service: %w", err)
	}

	app.contactService, err = service.NewContactService(app.contactStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	app.relationshipService, err = service.NewRelationshipService(
		app.personStore,
		app.relationshipStore,
		runTx,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled))
	return app, nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
