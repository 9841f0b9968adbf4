package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/personas-api/internal/store"
)

// SQLSTATE codes the stores react to.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// constraintErrors maps integrity violations to store sentinels. The label
// names the violated rule in the wrapped message.
var constraintErrors = map[string]struct {
	sentinel error
	label    string
}{
	uniqueViolationCode:     {store.ErrDuplicate, "unique violation"},
	foreignKeyViolationCode: {store.ErrInvalidEntity, "foreign key violation"},
	checkViolationCode:      {store.ErrInvalidEntity, "check constraint violation"},
	notNullViolationCode:    {store.ErrInvalidEntity, "not null violation"},
}

// MapError translates a database error into the store error vocabulary.
// sql.ErrNoRows becomes store.ErrNotFound and integrity violations become
// store.ErrDuplicate or store.ErrInvalidEntity; the driver error stays in
// the message for logs. Anything else is returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	mapped, ok := constraintErrors[pgErr.Code]
	if !ok {
		return err
	}

	subject := pgErr.ConstraintName
	if subject == "" {
		subject = pgErr.ColumnName
	}
	if subject == "" {
		return fmt.Errorf("%w: %s: %v", mapped.sentinel, mapped.label, err)
	}
	return fmt.Errorf("%w: %s (%s): %v", mapped.sentinel, mapped.label, subject, err)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolation reports whether err is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolationCode)
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if result
// reports zero affected rows. DELETE uses it to detect a missing target row.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
