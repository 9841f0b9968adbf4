package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
)

// PersonsService provides person CRUD operations.
type PersonsService interface {
	// GetAllPersons returns every person in store order.
	GetAllPersons(ctx context.Context) ([]*domain.Person, error)

	// PostPerson stores a new person, together with any nested contact data,
	// and returns it with its assigned ID.
	PostPerson(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// GetPersonByID returns the person and true, or nil and false when absent.
	GetPersonByID(ctx context.Context, id int64) (*domain.Person, bool, error)

	// UpdatePersonByID replaces the person's descriptive fields and any
	// nested contact data supplied. Returns ErrPersonNotFound when absent.
	UpdatePersonByID(ctx context.Context, id int64, person *domain.Person) (*domain.Person, error)

	// DeletePersonByID removes the person. Returns ErrPersonNotFound when absent.
	DeletePersonByID(ctx context.Context, id int64) error
}

type personsServiceImpl struct {
	persons  store.PersonStore
	contacts store.ContactStore
	runTx    store.TxRunner
	logger   *slog.Logger
}

// NewPersonsService creates a new PersonsService.
// It returns an error if any of the required dependencies are nil.
func NewPersonsService(
	persons store.PersonStore,
	contacts store.ContactStore,
	runTx store.TxRunner,
	logger *slog.Logger,
) (PersonsService, error) {
	if persons == nil {
		return nil, &ServiceError{Service: "persons", Operation: "create_service", Message: "persons store cannot be nil"}
	}
	if contacts == nil {
		return nil, &ServiceError{Service: "persons", Operation: "create_service", Message: "contacts store cannot be nil"}
	}
	if runTx == nil {
		return nil, &ServiceError{Service: "persons", Operation: "create_service", Message: "transaction runner cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &personsServiceImpl{
		persons:  persons,
		contacts: contacts,
		runTx:    runTx,
		logger:   logger.With("component", "persons_service"),
	}, nil
}

// GetAllPersons returns every person in store order.
func (s *personsServiceImpl) GetAllPersons(ctx context.Context) ([]*domain.Person, error) {
	persons, err := s.persons.List(ctx)
	if err != nil {
		s.logger.Error("failed to list persons", "error", err)
		return nil, NewServiceError("persons", "get_all_persons", "failed to list persons", err)
	}

	s.logger.Debug("listed persons", "count", len(persons))
	return persons, nil
}

// PostPerson creates the person and its contact data in one transaction.
func (s *personsServiceImpl) PostPerson(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person == nil {
		return nil, NewServiceError("persons", "post_person", "person is required", domain.ErrValidation)
	}

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txPersons := s.persons.WithTx(tx)
		if err := txPersons.Create(ctx, person); err != nil {
			return fmt.Errorf("failed to create person: %w", err)
		}
		return s.saveContacts(ctx, s.contacts.WithTx(tx), person)
	})
	if err != nil {
		s.logger.Error("failed to create person",
			"error", err,
			"has_contact_data", person.HasContactData())
		return nil, NewServiceError("persons", "post_person", "failed to create person", err)
	}

	s.logger.Info("person created", "person_id", person.ID)
	return person, nil
}

// GetPersonByID maps store.ErrPersonNotFound to found=false.
func (s *personsServiceImpl) GetPersonByID(ctx context.Context, id int64) (*domain.Person, bool, error) {
	person, err := s.persons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			s.logger.Debug("person not found", "person_id", id)
			return nil, false, nil
		}
		s.logger.Error("failed to retrieve person", "error", err, "person_id", id)
		return nil, false, NewServiceError("persons", "get_person", "failed to retrieve person", err)
	}
	return person, true, nil
}

// UpdatePersonByID updates the person and its contact data in one transaction.
// The ID in the path wins over any ID carried by the payload.
func (s *personsServiceImpl) UpdatePersonByID(
	ctx context.Context,
	id int64,
	person *domain.Person,
) (*domain.Person, error) {
	if person == nil {
		return nil, NewServiceError("persons", "update_person", "person is required", domain.ErrValidation)
	}
	person.ID = id

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.persons.WithTx(tx).Update(ctx, person); err != nil {
			return err
		}
		return s.saveContacts(ctx, s.contacts.WithTx(tx), person)
	})
	if err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			s.logger.Debug("person to update not found", "person_id", id)
		} else {
			s.logger.Error("failed to update person", "error", err, "person_id", id)
		}
		return nil, NewServiceError("persons", "update_person", "failed to update person", err)
	}

	s.logger.Info("person updated", "person_id", id)
	return person, nil
}

// DeletePersonByID removes the person; contact data and relations cascade.
func (s *personsServiceImpl) DeletePersonByID(ctx context.Context, id int64) error {
	if err := s.persons.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			s.logger.Debug("person to delete not found", "person_id", id)
			return ErrPersonNotFound
		}
		s.logger.Error("failed to delete person", "error", err, "person_id", id)
		return NewServiceError("persons", "delete_person", "failed to delete person", err)
	}

	s.logger.Info("person deleted", "person_id", id)
	return nil
}

// saveContacts stores whichever nested contact records the person carries,
// stamping each with the person's ID.
func (s *personsServiceImpl) saveContacts(ctx context.Context, contacts store.ContactStore, person *domain.Person) error {
	if person.Document != nil {
		person.Document.PersonID = person.ID
		if err := contacts.SaveDocument(ctx, person.Document); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
	}
	if person.Address != nil {
		person.Address.PersonID = person.ID
		if err := contacts.SaveAddress(ctx, person.Address); err != nil {
			return fmt.Errorf("failed to save address: %w", err)
		}
	}
	if person.Phone != nil {
		person.Phone.PersonID = person.ID
		if err := contacts.SavePhone(ctx, person.Phone); err != nil {
			return fmt.Errorf("failed to save phone: %w", err)
		}
	}
	return nil
}
