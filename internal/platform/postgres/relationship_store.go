package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/platform/logger"
	"github.com/phrazzld/personas-api/internal/store"
)

// PostgresRelationshipStore implements the store.RelationshipStore interface
// over the parent_relations table.
type PostgresRelationshipStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRelationshipStore creates a new PostgreSQL implementation of the RelationshipStore interface.
func NewPostgresRelationshipStore(db store.DBTX, logger *slog.Logger) *PostgresRelationshipStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRelationshipStore{
		db:     db,
		logger: logger.With(slog.String("component", "relationship_store")),
	}
}

// Ensure PostgresRelationshipStore implements store.RelationshipStore interface
var _ store.RelationshipStore = (*PostgresRelationshipStore)(nil)

// AddParent implements store.RelationshipStore.AddParent
func (s *PostgresRelationshipStore) AddParent(ctx context.Context, parentID, childID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parent_relations (parent_id, child_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, child_id) DO NOTHING
	`, parentID, childID)
	if err != nil {
		log.Error("failed to add parent relation",
			slog.String("error", err.Error()),
			slog.Int64("parent_id", parentID),
			slog.Int64("child_id", childID))
		return store.NewStoreError("parent_relation", "create", "failed to add parent relation", MapError(err))
	}

	log.Debug("parent relation stored",
		slog.Int64("parent_id", parentID),
		slog.Int64("child_id", childID))
	return nil
}

// Children implements store.RelationshipStore.Children
func (s *PostgresRelationshipStore) Children(ctx context.Context, parentID int64) ([]*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.first_name, p.last_name, p.birth_date, p.email, p.created_at, p.updated_at
		FROM parent_relations r
		JOIN persons p ON p.id = r.child_id
		WHERE r.parent_id = $1
		ORDER BY r.created_at, p.id
	`, parentID)
	if err != nil {
		log.Error("failed to list children",
			slog.String("error", err.Error()),
			slog.Int64("parent_id", parentID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	children := make([]*domain.Person, 0)
	for rows.Next() {
		child, err := scanPerson(rows)
		if err != nil {
			return nil, MapError(err)
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return children, nil
}

// Classify implements store.RelationshipStore.Classify
// Only direct links are recognized: a parent of b, a child of b, or a and b
// sharing at least one parent.
func (s *PostgresRelationshipStore) Classify(ctx context.Context, a, b int64) (string, error) {
	if a == b {
		return "", fmt.Errorf("%w: cannot classify a person against itself", store.ErrInvalidEntity)
	}

	var isParent, isChild, isSibling bool
	err := s.db.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM parent_relations WHERE parent_id = $1 AND child_id = $2),
			EXISTS (SELECT 1 FROM parent_relations WHERE parent_id = $2 AND child_id = $1),
			EXISTS (
				SELECT 1
				FROM parent_relations r1
				JOIN parent_relations r2 ON r1.parent_id = r2.parent_id
				WHERE r1.child_id = $1 AND r2.child_id = $2
			)
	`, a, b).Scan(&isParent, &isChild, &isSibling)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to classify relation",
			slog.String("error", err.Error()),
			slog.Int64("person1_id", a),
			slog.Int64("person2_id", b))
		return "", MapError(err)
	}

	switch {
	case isParent:
		return domain.RelationParent, nil
	case isChild:
		return domain.RelationChild, nil
	case isSibling:
		return domain.RelationSibling, nil
	default:
		return "", store.ErrRelationNotFound
	}
}

// WithTx implements store.RelationshipStore.WithTx
func (s *PostgresRelationshipStore) WithTx(tx *sql.Tx) store.RelationshipStore {
	return &PostgresRelationshipStore{
		db:     tx,
		logger: s.logger,
	}
}
