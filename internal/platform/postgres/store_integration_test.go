package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/platform/postgres"
	"github.com/phrazzld/personas-api/internal/store"
	"github.com/phrazzld/personas-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPerson(t *testing.T, s store.PersonStore, first string) *domain.Person {
	t.Helper()
	p := &domain.Person{FirstName: first, LastName: "Test"}
	require.NoError(t, s.Create(context.Background(), p), "Failed to create person %s", first)
	require.NotZero(t, p.ID)
	return p
}

func TestPostgresPersonStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		persons := postgres.NewPostgresPersonStore(tx, nil)

		born := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		p := &domain.Person{FirstName: "Ana", LastName: "Gómez", BirthDate: &born, Email: "ana@example.com"}
		require.NoError(t, persons.Create(ctx, p))

		got, err := persons.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.FirstName)
		require.NotNil(t, got.BirthDate)
		assert.Equal(t, born.Format(time.DateOnly), got.BirthDate.Format(time.DateOnly))

		got.LastName = "Ruiz"
		got.BirthDate = nil
		require.NoError(t, persons.Update(ctx, got))

		updated, err := persons.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ruiz", updated.LastName)
		assert.Nil(t, updated.BirthDate)

		all, err := persons.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, all)

		require.NoError(t, persons.Delete(ctx, p.ID))
		_, err = persons.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, store.ErrPersonNotFound)
		assert.ErrorIs(t, persons.Delete(ctx, p.ID), store.ErrPersonNotFound)
		assert.ErrorIs(t, persons.Update(ctx, p), store.ErrPersonNotFound)
	})
}

func TestPostgresContactStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		persons := postgres.NewPostgresPersonStore(tx, nil)
		contacts := postgres.NewPostgresContactStore(tx, nil)

		ana := createPerson(t, persons, "Ana")
		luis := createPerson(t, persons, "Luis")

		_, err := contacts.GetDocument(ctx, ana.ID)
		assert.ErrorIs(t, err, store.ErrDocumentNotFound)

		doc := &domain.Document{PersonID: ana.ID, Type: "DNI", Number: "30111222", Country: "AR"}
		require.NoError(t, contacts.SaveDocument(ctx, doc))
		require.NoError(t, contacts.SaveAddress(ctx, &domain.Address{
			PersonID: ana.ID, Street: "Av. Siempre Viva", Number: "742", City: "Rosario",
		}))
		require.NoError(t, contacts.SavePhone(ctx, &domain.Phone{PersonID: ana.ID, Type: "MOVIL", Number: "1155556666"}))

		gotDoc, err := contacts.GetDocument(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, doc, gotDoc)

		addr, err := contacts.GetAddress(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rosario", addr.City)

		// Saving again replaces the phone rather than adding a second one.
		require.NoError(t, contacts.SavePhone(ctx, &domain.Phone{PersonID: ana.ID, Type: "FIJO", Number: "4444"}))
		phone, err := contacts.GetPhone(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, "FIJO", phone.Type)

		err = contacts.SaveDocument(ctx, &domain.Document{PersonID: luis.ID, Type: "DNI", Number: "30111222"})
		assert.ErrorIs(t, err, store.ErrDocumentExists)
	})
}

func TestPostgresRelationshipStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		persons := postgres.NewPostgresPersonStore(tx, nil)
		relations := postgres.NewPostgresRelationshipStore(tx, nil)

		parent := createPerson(t, persons, "Marta")
		first := createPerson(t, persons, "Juan")
		second := createPerson(t, persons, "Sofía")
		stranger := createPerson(t, persons, "Pedro")

		require.NoError(t, relations.AddParent(ctx, parent.ID, first.ID))
		require.NoError(t, relations.AddParent(ctx, parent.ID, second.ID))
		require.NoError(t, relations.AddParent(ctx, parent.ID, second.ID), "AddParent should be idempotent")

		children, err := relations.Children(ctx, parent.ID)
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, first.ID, children[0].ID)
		assert.Equal(t, second.ID, children[1].ID)

		rel, err := relations.Classify(ctx, parent.ID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RelationParent, rel)

		rel, err = relations.Classify(ctx, second.ID, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RelationChild, rel)

		rel, err = relations.Classify(ctx, first.ID, second.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RelationSibling, rel)

		_, err = relations.Classify(ctx, first.ID, stranger.ID)
		assert.ErrorIs(t, err, store.ErrRelationNotFound)

		err = relations.AddParent(ctx, parent.ID, 1<<40)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
