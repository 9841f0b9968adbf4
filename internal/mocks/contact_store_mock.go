package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockContactStore is a mock of store.ContactStore for use with testify/mock
type TestifyMockContactStore struct {
	mock.Mock
}

// GetDocument is a mock implementation of store.ContactStore.GetDocument
func (m *TestifyMockContactStore) GetDocument(ctx context.Context, personID int64) (*domain.Document, error) {
	args := m.Called(ctx, personID)
	if doc, ok := args.Get(0).(*domain.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAddress is a mock implementation of store.ContactStore.GetAddress
func (m *TestifyMockContactStore) GetAddress(ctx context.Context, personID int64) (*domain.Address, error) {
	args := m.Called(ctx, personID)
	if addr, ok := args.Get(0).(*domain.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetPhone is a mock implementation of store.ContactStore.GetPhone
func (m *TestifyMockContactStore) GetPhone(ctx context.Context, personID int64) (*domain.Phone, error) {
	args := m.Called(ctx, personID)
	if phone, ok := args.Get(0).(*domain.Phone); ok {
		return phone, args.Error(1)
	}
	return nil, args.Error(1)
}

// SaveDocument is a mock implementation of store.ContactStore.SaveDocument
func (m *TestifyMockContactStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// SaveAddress is a mock implementation of store.ContactStore.SaveAddress
func (m *TestifyMockContactStore) SaveAddress(ctx context.Context, addr *domain.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

// SavePhone is a mock implementation of store.ContactStore.SavePhone
func (m *TestifyMockContactStore) SavePhone(ctx context.Context, phone *domain.Phone) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

// WithTx returns the mock itself.
func (m *TestifyMockContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return m
}
