package mocks

import (
	"context"

	"github.com/phrazzld/personas-api/internal/domain"
)

// MockRelationshipService implements service.RelationshipService for testing
type MockRelationshipService struct {
	SetParentRelationFn  func(ctx context.Context, parentID, childID int64) error
	GetChildrenFn        func(ctx context.Context, parentID int64) ([]*domain.Person, error)
	GetRelationBetweenFn func(ctx context.Context, userID1, userID2 int64) (*domain.RelativeRelation, error)

	// GetChildrenCalled is set once GetChildren runs.
	GetChildrenCalled bool
}

// SetParentRelation implements the service.RelationshipService interface
func (m *MockRelationshipService) SetParentRelation(ctx context.Context, parentID, childID int64) error {
	if m.SetParentRelationFn != nil {
		return m.SetParentRelationFn(ctx, parentID, childID)
	}
	return nil
}

// GetChildren implements the service.RelationshipService interface
func (m *MockRelationshipService) GetChildren(ctx context.Context, parentID int64) ([]*domain.Person, error) {
	m.GetChildrenCalled = true
	if m.GetChildrenFn != nil {
		return m.GetChildrenFn(ctx, parentID)
	}
	return nil, nil
}

// GetRelationBetween implements the service.RelationshipService interface
func (m *MockRelationshipService) GetRelationBetween(
	ctx context.Context,
	userID1, userID2 int64,
) (*domain.RelativeRelation, error) {
	if m.GetRelationBetweenFn != nil {
		return m.GetRelationBetweenFn(ctx, userID1, userID2)
	}
	return nil, nil
}
