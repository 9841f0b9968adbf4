package middleware

import (
	"net/http"

	"github.com/phrazzld/personas-api/internal/config"
	"github.com/rs/cors"
)

// NewCORSMiddleware builds the cross-origin handler from configuration.
// The Location and X-Trace-ID headers are exposed so browser clients can
// follow created resources and report trace IDs.
func NewCORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-Trace-ID"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           300,
	})
	return c.Handler
}
