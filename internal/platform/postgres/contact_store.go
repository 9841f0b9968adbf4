package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/platform/logger"
	"github.com/phrazzld/personas-api/internal/store"
)

// PostgresContactStore implements the store.ContactStore interface
// over the documents, addresses and phones tables.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

// GetDocument implements store.ContactStore.GetDocument
func (s *PostgresContactStore) GetDocument(ctx context.Context, personID int64) (*domain.Document, error) {
	var d domain.Document
	err := s.db.QueryRowContext(ctx,
		`SELECT person_id, type, number, country FROM documents WHERE person_id = $1`,
		personID,
	).Scan(&d.PersonID, &d.Type, &d.Number, &d.Country)
	if err != nil {
		return nil, s.lookupError(ctx, err, "document", personID, store.ErrDocumentNotFound)
	}
	return &d, nil
}

// GetAddress implements store.ContactStore.GetAddress
func (s *PostgresContactStore) GetAddress(ctx context.Context, personID int64) (*domain.Address, error) {
	var a domain.Address
	err := s.db.QueryRowContext(ctx, `
		SELECT person_id, street, number, city, province, postal_code, country
		FROM addresses
		WHERE person_id = $1
	`, personID).Scan(&a.PersonID, &a.Street, &a.Number, &a.City, &a.Province, &a.PostalCode, &a.Country)
	if err != nil {
		return nil, s.lookupError(ctx, err, "address", personID, store.ErrAddressNotFound)
	}
	return &a, nil
}

// GetPhone implements store.ContactStore.GetPhone
func (s *PostgresContactStore) GetPhone(ctx context.Context, personID int64) (*domain.Phone, error) {
	var p domain.Phone
	err := s.db.QueryRowContext(ctx,
		`SELECT person_id, type, number FROM phones WHERE person_id = $1`,
		personID,
	).Scan(&p.PersonID, &p.Type, &p.Number)
	if err != nil {
		return nil, s.lookupError(ctx, err, "phone", personID, store.ErrPhoneNotFound)
	}
	return &p, nil
}

// SaveDocument implements store.ContactStore.SaveDocument
// Returns store.ErrDocumentExists when another person holds the same type and number.
func (s *PostgresContactStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (person_id, type, number, country)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id) DO UPDATE
		SET type = EXCLUDED.type, number = EXCLUDED.number, country = EXCLUDED.country
	`, doc.PersonID, doc.Type, doc.Number, doc.Country)
	if err != nil {
		if IsUniqueViolation(err) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("document already registered",
				slog.Int64("person_id", doc.PersonID),
				slog.String("type", doc.Type))
			return fmt.Errorf("%w: %v", store.ErrDocumentExists, err)
		}
		return s.saveError(ctx, err, "document", doc.PersonID)
	}
	return nil
}

// SaveAddress implements store.ContactStore.SaveAddress
func (s *PostgresContactStore) SaveAddress(ctx context.Context, addr *domain.Address) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO addresses (person_id, street, number, city, province, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (person_id) DO UPDATE
		SET street = EXCLUDED.street, number = EXCLUDED.number, city = EXCLUDED.city,
			province = EXCLUDED.province, postal_code = EXCLUDED.postal_code, country = EXCLUDED.country
	`, addr.PersonID, addr.Street, addr.Number, addr.City, addr.Province, addr.PostalCode, addr.Country)
	if err != nil {
		return s.saveError(ctx, err, "address", addr.PersonID)
	}
	return nil
}

// SavePhone implements store.ContactStore.SavePhone
func (s *PostgresContactStore) SavePhone(ctx context.Context, phone *domain.Phone) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO phones (person_id, type, number)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id) DO UPDATE
		SET type = EXCLUDED.type, number = EXCLUDED.number
	`, phone.PersonID, phone.Type, phone.Number)
	if err != nil {
		return s.saveError(ctx, err, "phone", phone.PersonID)
	}
	return nil
}

// WithTx implements store.ContactStore.WithTx
func (s *PostgresContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &PostgresContactStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresContactStore) lookupError(
	ctx context.Context,
	err error,
	entity string,
	personID int64,
	notFound error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug(entity+" not found", slog.Int64("person_id", personID))
		return notFound
	}
	log.Error("failed to get "+entity,
		slog.String("error", err.Error()),
		slog.Int64("person_id", personID))
	return MapError(err)
}

func (s *PostgresContactStore) saveError(ctx context.Context, err error, entity string, personID int64) error {
	logger.FromContextOrDefault(ctx, s.logger).Error("failed to save "+entity,
		slog.String("error", err.Error()),
		slog.Int64("person_id", personID))
	return store.NewStoreError(entity, "save", "failed to save "+entity, MapError(err))
}
