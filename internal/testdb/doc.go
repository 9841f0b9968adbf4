// Package testdb provides utilities for database integration tests.
//
// Tests use transaction-based isolation: each test runs inside a
// transaction that is rolled back when it completes, so tests can share the
// schema and run in parallel without cleanup.
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips when DATABASE_URL is unset
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        personStore := postgres.NewPostgresPersonStore(tx, nil)
//	        // ...
//	    })
//	}
//
// GetTestDBWithT applies the embedded migrations once per process.
package testdb
