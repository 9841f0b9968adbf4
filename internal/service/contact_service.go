package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
)

// DocumentService reads the identity document attached to a person.
type DocumentService interface {
	GetDocumentByUserID(ctx context.Context, userID int64) (*domain.Document, bool, error)
}

// AddressService reads the postal address attached to a person.
type AddressService interface {
	GetAddressByUserID(ctx context.Context, userID int64) (*domain.Address, bool, error)
}

// PhoneService reads the phone attached to a person.
type PhoneService interface {
	GetPhoneByUserID(ctx context.Context, userID int64) (*domain.Phone, bool, error)
}

// ContactService implements DocumentService, AddressService and PhoneService
// over a single ContactStore.
type ContactService struct {
	contacts store.ContactStore
	logger   *slog.Logger
}

var (
	_ DocumentService = (*ContactService)(nil)
	_ AddressService  = (*ContactService)(nil)
	_ PhoneService    = (*ContactService)(nil)
)

// NewContactService creates a new ContactService.
// It returns an error if contacts is nil.
func NewContactService(contacts store.ContactStore, logger *slog.Logger) (*ContactService, error) {
	if contacts == nil {
		return nil, &ServiceError{Service: "contact", Operation: "create_service", Message: "contact store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		contacts: contacts,
		logger:   logger.With("component", "contact_service"),
	}, nil
}

// GetDocumentByUserID returns the person's document, or found=false if none is stored.
func (s *ContactService) GetDocumentByUserID(ctx context.Context, userID int64) (*domain.Document, bool, error) {
	doc, err := s.contacts.GetDocument(ctx, userID)
	found, err := s.classify(err, "document", userID)
	if !found {
		return nil, false, err
	}
	return doc, true, nil
}

// GetAddressByUserID returns the person's address, or found=false if none is stored.
func (s *ContactService) GetAddressByUserID(ctx context.Context, userID int64) (*domain.Address, bool, error) {
	addr, err := s.contacts.GetAddress(ctx, userID)
	found, err := s.classify(err, "address", userID)
	if !found {
		return nil, false, err
	}
	return addr, true, nil
}

// GetPhoneByUserID returns the person's phone, or found=false if none is stored.
func (s *ContactService) GetPhoneByUserID(ctx context.Context, userID int64) (*domain.Phone, bool, error) {
	phone, err := s.contacts.GetPhone(ctx, userID)
	found, err := s.classify(err, "phone", userID)
	if !found {
		return nil, false, err
	}
	return phone, true, nil
}

// classify turns a store lookup error into the (found, err) pair.
// Not-found is absence, not failure.
func (s *ContactService) classify(err error, entity string, userID int64) (bool, error) {
	if err == nil {
		return true, nil
	}
	if store.IsNotFoundError(err) {
		s.logger.Debug(entity+" not found", "person_id", userID)
		return false, nil
	}
	s.logger.Error("failed to retrieve "+entity, "error", err, "person_id", userID)
	return false, NewServiceError("contact", "get_"+entity, "failed to retrieve "+entity, err)
}
