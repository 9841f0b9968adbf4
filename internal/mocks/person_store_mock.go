package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPersonStore is a mock of store.PersonStore for use with testify/mock
type TestifyMockPersonStore struct {
	mock.Mock
}

// List is a mock implementation of store.PersonStore.List
func (m *TestifyMockPersonStore) List(ctx context.Context) ([]*domain.Person, error) {
	args := m.Called(ctx)
	if persons, ok := args.Get(0).([]*domain.Person); ok {
		return persons, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.PersonStore.Create
func (m *TestifyMockPersonStore) Create(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// GetByID is a mock implementation of store.PersonStore.GetByID
func (m *TestifyMockPersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if person, ok := args.Get(0).(*domain.Person); ok {
		return person, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.PersonStore.Update
func (m *TestifyMockPersonStore) Update(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// Delete is a mock implementation of store.PersonStore.Delete
func (m *TestifyMockPersonStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations set on it also cover
// transactional calls.
func (m *TestifyMockPersonStore) WithTx(tx *sql.Tx) store.PersonStore {
	return m
}
