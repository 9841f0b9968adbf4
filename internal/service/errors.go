package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
)

// Sentinel errors returned by service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP statuses.
var (
	// ErrPersonNotFound indicates that the referenced person does not exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrSelfRelation is returned when both sides of a relation are the same person.
	ErrSelfRelation = domain.ErrSelfRelation
)

// ServiceError wraps unexpected failures with the operation that produced them.
type ServiceError struct {
	// Service is the component that failed (e.g., "persons", "relationship")
	Service string
	// Operation is the operation that failed (e.g., "post_person")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// It returns known sentinel errors directly without wrapping, and maps
// store.ErrPersonNotFound to ErrPersonNotFound.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrPersonNotFound), errors.Is(err, store.ErrPersonNotFound):
		return ErrPersonNotFound
	case errors.Is(err, ErrSelfRelation):
		return ErrSelfRelation
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
