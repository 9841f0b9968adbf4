package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	fnErr := errors.New("insert phone failed")
	driverErr := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
		fn    TxFn
		check func(t *testing.T, err error)
	}{
		{
			name: "commits on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO phones").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "INSERT INTO phones (person_id, type, number) VALUES ($1, $2, $3)",
					1, "MOVIL", "1155556666")
				return err
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "rolls back and returns the function error unchanged",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(context.Context, *sql.Tx) error { return fnErr },
			check: func(t *testing.T, err error) { assert.Same(t, fnErr, err) },
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(driverErr)
			},
			fn: func(context.Context, *sql.Tx) error {
				return errors.New("function must not run without a transaction")
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTransactionFailed)
				assert.ErrorIs(t, err, driverErr)
				assert.Contains(t, err.Error(), "failed to begin transaction")
			},
		},
		{
			name: "commit failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(driverErr)
			},
			fn: func(context.Context, *sql.Tx) error { return nil },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTransactionFailed)
				assert.ErrorIs(t, err, driverErr)
				assert.Contains(t, err.Error(), "failed to commit transaction")
			},
		},
		{
			name: "rollback failure reports both errors",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fn: func(context.Context, *sql.Tx) error { return fnErr },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, fnErr)
				assert.Contains(t, err.Error(), "rollback failed")
				assert.Contains(t, err.Error(), "original error")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			tc.setup(mock)
			tc.check(t, RunInTransaction(context.Background(), db, tc.fn))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_PanicRollsBackAndRepanics(t *testing.T) {
	for _, rollbackErr := range []error{nil, errors.New("rollback failed")} {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(rollbackErr)

		assert.PanicsWithValue(t, "boom", func() {
			_ = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	}
}

func TestNewTxRunner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM parent_relations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	run := NewTxRunner(db)
	err = run(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx, "DELETE FROM parent_relations WHERE parent_id = $1", 1)
		return execErr
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
