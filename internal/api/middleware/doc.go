// Package middleware provides HTTP middleware shared by every route:
// request tracing with a request-scoped logger, and CORS.
package middleware
