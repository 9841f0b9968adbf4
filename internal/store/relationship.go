package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
)

// RelationshipStore persists parent/child links between persons.
type RelationshipStore interface {
	// AddParent links parentID as a parent of childID. Repeating an existing
	// link is not an error. Returns ErrInvalidEntity if either person is missing.
	AddParent(ctx context.Context, parentID, childID int64) error

	// Children returns the children of parentID ordered by the time the
	// link was created, then by child ID.
	Children(ctx context.Context, parentID int64) ([]*domain.Person, error)

	// Classify returns the relation label of a with respect to b.
	// Returns ErrRelationNotFound if no direct relation links them.
	Classify(ctx context.Context, a, b int64) (string, error)

	// WithTx returns a RelationshipStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) RelationshipStore
}
