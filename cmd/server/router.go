package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/personas-api/internal/api"
	apiMiddleware "github.com/phrazzld/personas-api/internal/api/middleware"
)

// healthCheckTimeout bounds the database ping behind /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS))
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	personsHandler := api.NewPersonsHandler(
		app.personsService,
		app.contactService,
		app.contactService,
		app.contactService,
		app.relationshipService,
		app.logger,
	)
	personsHandler.Routes(r)

	r.Get("/health", app.handleHealth)

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	return r
}

// handleHealth reports 200 when the database answers a ping, 503 otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Warn("Health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "database unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
