package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
)

// ContactStore persists the document, address and phone attached to a person.
// Each person has at most one of each; Save* methods insert or replace.
type ContactStore interface {
	// GetDocument returns ErrDocumentNotFound if the person has none.
	GetDocument(ctx context.Context, personID int64) (*domain.Document, error)

	// GetAddress returns ErrAddressNotFound if the person has none.
	GetAddress(ctx context.Context, personID int64) (*domain.Address, error)

	// GetPhone returns ErrPhoneNotFound if the person has none.
	GetPhone(ctx context.Context, personID int64) (*domain.Phone, error)

	// SaveDocument returns ErrDocumentExists if another person holds the
	// same document type and number.
	SaveDocument(ctx context.Context, doc *domain.Document) error
	SaveAddress(ctx context.Context, addr *domain.Address) error
	SavePhone(ctx context.Context, phone *domain.Phone) error

	// WithTx returns a ContactStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) ContactStore
}
