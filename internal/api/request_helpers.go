package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/personas-api/internal/api/shared"
	"github.com/phrazzld/personas-api/internal/domain"
)

// validationMessages holds the user-facing text for validator tags.
var validationMessages = map[string]string{
	"datetime": "must be a date in YYYY-MM-DD format",
}

// getPathID extracts a person ID from the URL path parameters.
// It fails with a validation error wrapping domain.ErrInvalidID when the
// parameter is missing or not a base-10 int64. Zero and negative IDs are
// passed through; they never match a stored person, so lookups report them
// as absent.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// handlePathID is getPathID that writes a 400 response on failure.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, http.StatusBadRequest, "")
		return 0, false
	}
	return id, true
}

// validateBody runs struct-tag validation on a decoded request body and
// reports the first failing field as a domain.ValidationError.
func validateBody(body interface{}) error {
	err := shared.ValidateRequest(body)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.NewValidationError("body", "is invalid", domain.ErrValidation)
	}

	fe := fieldErrs[0]
	msg, ok := validationMessages[fe.Tag()]
	if !ok {
		msg = "failed " + fe.Tag() + " validation"
	}
	return domain.NewValidationError(fe.Field(), msg, domain.ErrValidation)
}
