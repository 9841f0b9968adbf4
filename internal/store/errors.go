package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., two persons holding the same document).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a storage
	// constraint. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrPersonNotFound indicates that the requested person does not exist.
	ErrPersonNotFound = fmt.Errorf("%w: person", ErrNotFound)

	// ErrDocumentNotFound indicates that the person has no stored document.
	ErrDocumentNotFound = fmt.Errorf("%w: document", ErrNotFound)

	// ErrAddressNotFound indicates that the person has no stored address.
	ErrAddressNotFound = fmt.Errorf("%w: address", ErrNotFound)

	// ErrPhoneNotFound indicates that the person has no stored phone.
	ErrPhoneNotFound = fmt.Errorf("%w: phone", ErrNotFound)

	// ErrRelationNotFound indicates that no known relation links two persons.
	ErrRelationNotFound = fmt.Errorf("%w: relation", ErrNotFound)

	// ErrDocumentExists indicates that another person already holds the document.
	ErrDocumentExists = fmt.Errorf("%w: document", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "person", "phone")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
