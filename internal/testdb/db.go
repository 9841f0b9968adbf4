package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/personas-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Environment variables consulted for the test database URL, in order.
const (
	EnvDatabaseURL       = "DATABASE_URL"
	EnvPersonasTestDBURL = "PERSONAS_TEST_DB_URL"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// IsIntegrationTestEnvironment returns true if a test database URL is
// configured, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns the first non-empty of DATABASE_URL and
// PERSONAS_TEST_DB_URL.
func GetTestDatabaseURL() string {
	for _, key := range []string{EnvDatabaseURL, EnvPersonasTestDBURL} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// GetTestDBWithT returns a migrated database connection for testing.
// It skips the test if no database URL is set and closes the connection
// when the test ends.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or PERSONAS_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	require.NoError(t, SetupTestDatabaseSchema(db), "Failed to apply migrations")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	return db
}

// SetupTestDatabaseSchema applies the embedded migrations once per process.
func SetupTestDatabaseSchema(db *sql.DB) error {
	migrateOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		migrateErr = postgres.RunMigrations(ctx, db, "up", quietGooseLogger{})
	})
	if migrateErr != nil {
		return fmt.Errorf("failed to set up test schema: %w", migrateErr)
	}
	return nil
}

// WithTx runs fn within a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB closes the database connection, logging any error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

// quietGooseLogger discards goose progress output; failures surface as errors.
type quietGooseLogger struct{}

func (quietGooseLogger) Printf(format string, v ...interface{}) {}

func (quietGooseLogger) Fatalf(format string, v ...interface{}) {
	panic(fmt.Sprintf("goose fatal error: "+format, v...))
}
