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

const personColumns = `id, first_name, last_name, birth_date, email, created_at, updated_at`

// PostgresPersonStore implements the store.PersonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPersonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPersonStore creates a new PostgreSQL implementation of the PersonStore interface.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPersonStore(db store.DBTX, logger *slog.Logger) *PostgresPersonStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPersonStore{
		db:     db,
		logger: logger.With(slog.String("component", "person_store")),
	}
}

// Ensure PostgresPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*PostgresPersonStore)(nil)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var p domain.Person
	var birth sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&birth,
		&p.Email,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if birth.Valid {
		d := birth.Time
		p.BirthDate = &d
	}
	return &p, nil
}

// birthDateArg converts an optional birth date to a query argument.
func birthDateArg(p *domain.Person) any {
	if p.BirthDate == nil {
		return nil
	}
	return *p.BirthDate
}

// List implements store.PersonStore.List
func (s *PostgresPersonStore) List(ctx context.Context) ([]*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM persons ORDER BY id`)
	if err != nil {
		log.Error("failed to list persons", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			log.Error("failed to scan person row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating person rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("persons listed", slog.Int("count", len(persons)))
	return persons, nil
}

// Create implements store.PersonStore.Create
// The database assigns the ID and timestamps, which are written back to person.
func (s *PostgresPersonStore) Create(ctx context.Context, person *domain.Person) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO persons (first_name, last_name, birth_date, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		person.FirstName,
		person.LastName,
		birthDateArg(person),
		person.Email,
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		log.Error("failed to create person", slog.String("error", err.Error()))
		return store.NewStoreError("person", "create", "failed to insert person", MapError(err))
	}

	log.Info("person created", slog.Int64("person_id", person.ID))
	return nil
}

// GetByID implements store.PersonStore.GetByID
// Returns store.ErrPersonNotFound if the person does not exist.
func (s *PostgresPersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("person not found", slog.Int64("person_id", id))
			return nil, store.ErrPersonNotFound
		}
		log.Error("failed to get person by ID",
			slog.String("error", err.Error()),
			slog.Int64("person_id", id))
		return nil, MapError(err)
	}
	return p, nil
}

// Update implements store.PersonStore.Update
// Returns store.ErrPersonNotFound if the person does not exist.
func (s *PostgresPersonStore) Update(ctx context.Context, person *domain.Person) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE persons
		SET first_name = $1, last_name = $2, birth_date = $3, email = $4, updated_at = now()
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		person.FirstName,
		person.LastName,
		birthDateArg(person),
		person.Email,
		person.ID,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("person not found for update", slog.Int64("person_id", person.ID))
			return store.ErrPersonNotFound
		}
		log.Error("failed to update person",
			slog.String("error", err.Error()),
			slog.Int64("person_id", person.ID))
		return store.NewStoreError("person", "update", "failed to update person", MapError(err))
	}

	log.Info("person updated", slog.Int64("person_id", person.ID))
	return nil
}

// Delete implements store.PersonStore.Delete
// Contact rows and parent relations go with it through ON DELETE CASCADE.
func (s *PostgresPersonStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete person",
			slog.String("error", err.Error()),
			slog.Int64("person_id", id))
		return store.NewStoreError("person", "delete", "failed to delete person", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPersonNotFound); err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			log.Debug("person not found for delete", slog.Int64("person_id", id))
			return err
		}
		return fmt.Errorf("failed to delete person %d: %w", id, err)
	}

	log.Info("person deleted", slog.Int64("person_id", id))
	return nil
}

// WithTx implements store.PersonStore.WithTx
func (s *PostgresPersonStore) WithTx(tx *sql.Tx) store.PersonStore {
	return &PostgresPersonStore{
		db:     tx,
		logger: s.logger,
	}
}
