package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/personas-api/internal/api/shared"
	"github.com/phrazzld/personas-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	buf, log := logger.SetupTestLogger(t)

	var seenTraceID string
	var seenLoggerSet bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLoggerSet = logger.FromContextOrDefault(r.Context(), nil) != nil
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	handler := NewTraceMiddleware(log)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/personas", nil)
	handler.ServeHTTP(w, r)

	require.NotEmpty(t, seenTraceID)
	assert.True(t, seenLoggerSet)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)

	var handlerLogged, completedLogged bool
	for _, e := range entries {
		switch e["msg"] {
		case "inside handler":
			handlerLogged = true
			assert.Equal(t, seenTraceID, e["trace_id"], "handler logs should carry the trace ID")
		case "request completed":
			completedLogged = true
			assert.Equal(t, float64(http.StatusTeapot), e["status"])
			assert.Equal(t, "/personas", e["path"])
		}
	}
	assert.True(t, handlerLogged)
	assert.True(t, completedLogged)
}

func TestTraceMiddleware_DefaultStatus(t *testing.T) {
	buf, log := logger.SetupTestLogger(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := NewTraceMiddleware(log)(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "request completed", last["msg"])
	assert.Equal(t, float64(http.StatusOK), last["status"])
}
