package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/personas-api/internal/domain"
)

// MockPersonsService implements service.PersonsService for testing.
// Each method calls its Fn field when set; otherwise it returns the zero
// value and Err.
type MockPersonsService struct {
	GetAllPersonsFn    func(ctx context.Context) ([]*domain.Person, error)
	PostPersonFn       func(ctx context.Context, person *domain.Person) (*domain.Person, error)
	GetPersonByIDFn    func(ctx context.Context, id int64) (*domain.Person, bool, error)
	UpdatePersonByIDFn func(ctx context.Context, id int64, person *domain.Person) (*domain.Person, error)
	DeletePersonByIDFn func(ctx context.Context, id int64) error

	Err error

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockPersonsService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockPersonsService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// GetAllPersons implements the service.PersonsService interface
func (m *MockPersonsService) GetAllPersons(ctx context.Context) ([]*domain.Person, error) {
	m.record("GetAllPersons")
	if m.GetAllPersonsFn != nil {
		return m.GetAllPersonsFn(ctx)
	}
	return nil, m.Err
}

// PostPerson implements the service.PersonsService interface
func (m *MockPersonsService) PostPerson(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	m.record("PostPerson")
	if m.PostPersonFn != nil {
		return m.PostPersonFn(ctx, person)
	}
	return nil, m.Err
}

// GetPersonByID implements the service.PersonsService interface
func (m *MockPersonsService) GetPersonByID(ctx context.Context, id int64) (*domain.Person, bool, error) {
	m.record("GetPersonByID")
	if m.GetPersonByIDFn != nil {
		return m.GetPersonByIDFn(ctx, id)
	}
	return nil, false, m.Err
}

// UpdatePersonByID implements the service.PersonsService interface
func (m *MockPersonsService) UpdatePersonByID(
	ctx context.Context,
	id int64,
	person *domain.Person,
) (*domain.Person, error) {
	m.record("UpdatePersonByID")
	if m.UpdatePersonByIDFn != nil {
		return m.UpdatePersonByIDFn(ctx, id, person)
	}
	return nil, m.Err
}

// DeletePersonByID implements the service.PersonsService interface
func (m *MockPersonsService) DeletePersonByID(ctx context.Context, id int64) error {
	m.record("DeletePersonByID")
	if m.DeletePersonByIDFn != nil {
		return m.DeletePersonByIDFn(ctx, id)
	}
	return m.Err
}
