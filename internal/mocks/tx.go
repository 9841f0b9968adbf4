package mocks

import (
	"context"

	"github.com/phrazzld/personas-api/internal/store"
)

// PassthroughTxRunner is a store.TxRunner that calls fn with a nil
// transaction. Pair it with store mocks whose WithTx returns themselves.
func PassthroughTxRunner() store.TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	}
}

// FailingTxRunner is a store.TxRunner that never calls fn and returns err.
func FailingTxRunner(err error) store.TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return err
	}
}
