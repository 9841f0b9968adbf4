package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
)

// PersonStore defines the interface for person persistence.
type PersonStore interface {
	// List returns every person ordered by ID.
	List(ctx context.Context) ([]*domain.Person, error)

	// Create inserts the person and sets its ID and timestamps.
	// Nested contact data is ignored; it is stored through ContactStore.
	Create(ctx context.Context, person *domain.Person) error

	// GetByID retrieves a person by ID.
	// Returns ErrPersonNotFound if the person does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Person, error)

	// Update overwrites the descriptive fields of an existing person and
	// refreshes UpdatedAt. Returns ErrPersonNotFound if it does not exist.
	Update(ctx context.Context, person *domain.Person) error

	// Delete removes a person together with its contact data and relations.
	// Returns ErrPersonNotFound if the person does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PersonStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) PersonStore
}
