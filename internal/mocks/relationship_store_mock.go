package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockRelationshipStore is a mock of store.RelationshipStore for use with testify/mock
type TestifyMockRelationshipStore struct {
	mock.Mock
}

// AddParent is a mock implementation of store.RelationshipStore.AddParent
func (m *TestifyMockRelationshipStore) AddParent(ctx context.Context, parentID, childID int64) error {
	args := m.Called(ctx, parentID, childID)
	return args.Error(0)
}

// Children is a mock implementation of store.RelationshipStore.Children
func (m *TestifyMockRelationshipStore) Children(ctx context.Context, parentID int64) ([]*domain.Person, error) {
	args := m.Called(ctx, parentID)
	if children, ok := args.Get(0).([]*domain.Person); ok {
		return children, args.Error(1)
	}
	return nil, args.Error(1)
}

// Classify is a mock implementation of store.RelationshipStore.Classify
func (m *TestifyMockRelationshipStore) Classify(ctx context.Context, a, b int64) (string, error) {
	args := m.Called(ctx, a, b)
	return args.String(0), args.Error(1)
}

// WithTx returns the mock itself.
func (m *TestifyMockRelationshipStore) WithTx(tx *sql.Tx) store.RelationshipStore {
	return m
}
