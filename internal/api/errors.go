package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/personas-api/internal/api/shared"
	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/service"
	"github.com/phrazzld/personas-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients. Routes whose contract treats
// every failure as a server error do not call it.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, store.ErrPersonNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that carries no
// internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return "Invalid " + validationErr.Field + ": " + validationErr.Message

	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, store.ErrPersonNotFound):
		return "Person not found"

	case errors.Is(err, service.ErrSelfRelation):
		return "A person cannot be related to itself"

	case errors.Is(err, store.ErrDocumentExists):
		return "Document already registered"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	case errors.Is(err, store.ErrRelationNotFound):
		return "No relation found between persons"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A zero status selects
// one with MapErrorToStatusCode; an empty message selects GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	if status == 0 {
		status = MapErrorToStatusCode(err)
	}
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
