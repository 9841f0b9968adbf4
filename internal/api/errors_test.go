package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/service"
	"github.com/phrazzld/personas-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service not found", service.ErrPersonNotFound, http.StatusNotFound},
		{"wrapped store not found", fmt.Errorf("lookup: %w", store.ErrPersonNotFound), http.StatusNotFound},
		{"invalid id", domain.NewValidationError("userId", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"document exists", store.ErrDocumentExists, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"validation", domain.NewValidationError("childId", "is required", domain.ErrInvalidID), "Invalid childId: is required"},
		{"not found", service.ErrPersonNotFound, "Person not found"},
		{"self relation", service.ErrSelfRelation, "A person cannot be related to itself"},
		{"duplicate document", fmt.Errorf("save: %w", store.ErrDocumentExists), "Document already registered"},
		{"other duplicate", fmt.Errorf("save phone: %w", store.ErrDuplicate), "Resource already exists"},
		{"no relation", store.ErrRelationNotFound, "No relation found between persons"},
		{"internal detail hidden", errors.New("pq: relation \"persons\" does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
