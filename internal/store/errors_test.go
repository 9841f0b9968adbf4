package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("failed to do something: %w", ErrNotFound), expected: true},
		{name: "ErrPersonNotFound", err: ErrPersonNotFound, expected: true},
		{name: "ErrDocumentNotFound", err: ErrDocumentNotFound, expected: true},
		{name: "ErrAddressNotFound", err: ErrAddressNotFound, expected: true},
		{name: "ErrPhoneNotFound", err: ErrPhoneNotFound, expected: true},
		{name: "ErrRelationNotFound", err: ErrRelationNotFound, expected: true},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrDocumentExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("save document: %w", ErrDocumentExists)))
}

func TestEntitySpecificErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrPersonNotFound, ErrDocumentNotFound))
	assert.False(t, errors.Is(ErrPhoneNotFound, ErrAddressNotFound))
	assert.True(t, errors.Is(ErrPersonNotFound, ErrNotFound))
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("person", "delete", "person missing", ErrPersonNotFound)

		assert.Equal(t, "delete operation on person failed: person missing: entity not found: person", err.Error())
		assert.True(t, errors.Is(err, ErrPersonNotFound))
		assert.True(t, errors.Is(err, ErrNotFound))

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "person", storeErr.Entity)
		assert.Equal(t, "delete", storeErr.Operation)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("phone", "save", "empty number", nil)

		assert.Equal(t, "save operation on phone failed: empty number", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
