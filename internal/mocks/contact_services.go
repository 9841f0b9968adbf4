package mocks

import (
	"context"

	"github.com/phrazzld/personas-api/internal/domain"
)

// MockDocumentService implements service.DocumentService for testing
type MockDocumentService struct {
	GetDocumentByUserIDFn func(ctx context.Context, userID int64) (*domain.Document, bool, error)
}

// GetDocumentByUserID implements the service.DocumentService interface
func (m *MockDocumentService) GetDocumentByUserID(ctx context.Context, userID int64) (*domain.Document, bool, error) {
	if m.GetDocumentByUserIDFn != nil {
		return m.GetDocumentByUserIDFn(ctx, userID)
	}
	return nil, false, nil
}

// MockAddressService implements service.AddressService for testing
type MockAddressService struct {
	GetAddressByUserIDFn func(ctx context.Context, userID int64) (*domain.Address, bool, error)
}

// GetAddressByUserID implements the service.AddressService interface
func (m *MockAddressService) GetAddressByUserID(ctx context.Context, userID int64) (*domain.Address, bool, error) {
	if m.GetAddressByUserIDFn != nil {
		return m.GetAddressByUserIDFn(ctx, userID)
	}
	return nil, false, nil
}

// MockPhoneService implements service.PhoneService for testing
type MockPhoneService struct {
	GetPhoneByUserIDFn func(ctx context.Context, userID int64) (*domain.Phone, bool, error)
}

// GetPhoneByUserID implements the service.PhoneService interface
func (m *MockPhoneService) GetPhoneByUserID(ctx context.Context, userID int64) (*domain.Phone, bool, error) {
	if m.GetPhoneByUserIDFn != nil {
		return m.GetPhoneByUserIDFn(ctx, userID)
	}
	return nil, false, nil
}
