package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/personas-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestNewServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, NewServiceError("persons", "op", "msg", nil))
	})

	t.Run("store person not found becomes sentinel", func(t *testing.T) {
		err := NewServiceError("persons", "op", "msg", store.ErrPersonNotFound)
		assert.Same(t, ErrPersonNotFound, err)
	})

	t.Run("self relation passes through", func(t *testing.T) {
		err := NewServiceError("relationship", "op", "msg", ErrSelfRelation)
		assert.Same(t, ErrSelfRelation, err)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewServiceError("persons", "post_person", "failed to create person", cause)

		var svcErr *ServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "persons service post_person failed: failed to create person: disk full", err.Error())
	})
}

func TestServiceError_WithoutCause(t *testing.T) {
	err := &ServiceError{Service: "persons", Operation: "create_service", Message: "persons store cannot be nil"}
	assert.Equal(t, "persons service create_service failed: persons store cannot be nil", err.Error())
	assert.Nil(t, err.Unwrap())
}
