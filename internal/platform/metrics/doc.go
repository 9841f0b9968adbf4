// Package metrics exposes Prometheus instrumentation for the HTTP server.
//
// A Registry owns its own prometheus.Registry (no global default registry),
// the HTTP request counter and latency histogram, Go runtime and process
// collectors, and optionally the database/sql pool statistics. Middleware
// records one observation per request labelled with the chi route pattern,
// so path parameters do not explode label cardinality.
package metrics
