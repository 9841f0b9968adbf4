package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/store"
)

// RelationshipService manages parent/child links and answers how two
// persons are related.
type RelationshipService interface {
	// SetParentRelation records parentID as a parent of childID.
	SetParentRelation(ctx context.Context, parentID, childID int64) error

	// GetChildren returns the children of parentID in store order.
	GetChildren(ctx context.Context, parentID int64) ([]*domain.Person, error)

	// GetRelationBetween describes how userID1 relates to userID2.
	GetRelationBetween(ctx context.Context, userID1, userID2 int64) (*domain.RelativeRelation, error)
}

type relationshipServiceImpl struct {
	persons       store.PersonStore
	relationships store.RelationshipStore
	runTx         store.TxRunner
	logger        *slog.Logger
}

// NewRelationshipService creates a new RelationshipService.
// It returns an error if any of the required dependencies are nil.
func NewRelationshipService(
	persons store.PersonStore,
	relationships store.RelationshipStore,
	runTx store.TxRunner,
	logger *slog.Logger,
) (RelationshipService, error) {
	if persons == nil {
		return nil, &ServiceError{Service: "relationship", Operation: "create_service", Message: "persons store cannot be nil"}
	}
	if relationships == nil {
		return nil, &ServiceError{Service: "relationship", Operation: "create_service", Message: "relationships store cannot be nil"}
	}
	if runTx == nil {
		return nil, &ServiceError{Service: "relationship", Operation: "create_service", Message: "transaction runner cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &relationshipServiceImpl{
		persons:       persons,
		relationships: relationships,
		runTx:         runTx,
		logger:        logger.With("component", "relationship_service"),
	}, nil
}

// SetParentRelation checks that both persons exist and links them inside a
// single transaction, so a concurrent delete cannot slip between the checks
// and the insert.
func (s *relationshipServiceImpl) SetParentRelation(ctx context.Context, parentID, childID int64) error {
	if parentID == childID {
		return ErrSelfRelation
	}

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txPersons := s.persons.WithTx(tx)
		if _, err := txPersons.GetByID(ctx, parentID); err != nil {
			return err
		}
		if _, err := txPersons.GetByID(ctx, childID); err != nil {
			return err
		}
		return s.relationships.WithTx(tx).AddParent(ctx, parentID, childID)
	})
	if err != nil {
		s.logger.Error("failed to set parent relation",
			"error", err,
			"parent_id", parentID,
			"child_id", childID)
		return NewServiceError("relationship", "set_parent", "failed to set parent relation", err)
	}

	s.logger.Info("parent relation set", "parent_id", parentID, "child_id", childID)
	return nil
}

// GetChildren returns the children of parentID. An unknown parent yields an
// empty list; the caller decides whether the parent exists.
func (s *relationshipServiceImpl) GetChildren(ctx context.Context, parentID int64) ([]*domain.Person, error) {
	children, err := s.relationships.Children(ctx, parentID)
	if err != nil {
		s.logger.Error("failed to list children", "error", err, "parent_id", parentID)
		return nil, NewServiceError("relationship", "get_children", "failed to list children", err)
	}
	return children, nil
}

// GetRelationBetween loads both persons and classifies the link between them.
func (s *relationshipServiceImpl) GetRelationBetween(
	ctx context.Context,
	userID1, userID2 int64,
) (*domain.RelativeRelation, error) {
	if userID1 == userID2 {
		return nil, ErrSelfRelation
	}

	person1, err := s.persons.GetByID(ctx, userID1)
	if err != nil {
		return nil, s.relationError(err, userID1, userID2)
	}
	person2, err := s.persons.GetByID(ctx, userID2)
	if err != nil {
		return nil, s.relationError(err, userID1, userID2)
	}

	label, err := s.relationships.Classify(ctx, userID1, userID2)
	if err != nil {
		return nil, s.relationError(err, userID1, userID2)
	}

	return &domain.RelativeRelation{
		Person1:  person1,
		Person2:  person2,
		Relation: label,
	}, nil
}

func (s *relationshipServiceImpl) relationError(err error, userID1, userID2 int64) error {
	if store.IsNotFoundError(err) {
		s.logger.Debug("relation lookup found nothing",
			"error", err,
			"person1_id", userID1,
			"person2_id", userID2)
	} else {
		s.logger.Error("failed to resolve relation",
			"error", err,
			"person1_id", userID1,
			"person2_id", userID2)
	}
	return NewServiceError("relationship", "get_relation", "failed to resolve relation", err)
}
