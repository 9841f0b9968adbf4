package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/platform/logger"
)

// TxFn is a unit of work run inside a transaction. Returning an error
// rolls the transaction back; returning nil commits it.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// TxRunner runs fn inside a transaction. Services depend on it instead of a
// raw *sql.DB so the transactional boundary can be replaced in tests.
type TxRunner func(ctx context.Context, fn TxFn) error

// NewTxRunner returns a TxRunner backed by RunInTransaction on db.
func NewTxRunner(db *sql.DB) TxRunner {
	return func(ctx context.Context, fn TxFn) error {
		return RunInTransaction(ctx, db, fn)
	}
}

// RunInTransaction runs fn in a new transaction on db, committing on success
// and rolling back on error or panic. A panic is re-raised after rollback.
//
// Begin and commit failures wrap ErrTransactionFailed. An error from fn is
// returned unchanged unless the rollback also fails, in which case both are
// reported and fn's error stays reachable through errors.Is.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrTransactionFailed, err)
	}

	committed := false
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
		}
		// ALLOW-PANIC: Propagating caught panic from transaction
		panic(p)
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction", slog.String("cause", err.Error()))
		return err
	}

	committed = true
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to commit transaction: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed")
	return nil
}
