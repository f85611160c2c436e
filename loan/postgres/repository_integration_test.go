//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/libraryapp/lending/internal/testutil"
	"github.com/libraryapp/lending/loan"
	"github.com/libraryapp/lending/loan/postgres"
	"github.com/libraryapp/lending/user"
	userpg "github.com/libraryapp/lending/user/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* Integration tests against a real PostgreSQL instance, mainly for the
 * partial unique index that the unit tests can only simulate.
 * Run with: go test -tags=integration ./loan/postgres/...
 */

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()
	pc, cleanup := testutil.SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := postgres.NewRepository(pc.DB)
	users := userpg.NewRepository(pc.DB)

	newUser := func(t *testing.T, name string) int64 {
		t.Helper()
		id, err := users.Insert(ctx, user.New(name, nil))
		require.NoError(t, err)
		return id
	}

	entry := func(userID int64, bookName string) loan.History {
		return loan.History{
			ID:        uuid.New().String(),
			UserID:    userID,
			BookName:  bookName,
			Returned:  false,
			CreatedAt: time.Now(),
		}
	}

	clear := func(t *testing.T) {
		t.Helper()
		require.NoError(t, repo.DeleteAll(ctx))
		require.NoError(t, users.DeleteAll(ctx))
	}

	t.Run("second open loan for the same book is rejected", func(t *testing.T) {
		defer clear(t)

		alice := newUser(t, "Alice")
		bob := newUser(t, "Bob")

		require.NoError(t, repo.Insert(ctx, entry(alice, "Alice in Wonderland")))

		err := repo.Insert(ctx, entry(bob, "Alice in Wonderland"))
		assert.ErrorIs(t, err, loan.ErrOpenLoanExists)

		all, err := repo.SelectAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("returned loan frees the book", func(t *testing.T) {
		defer clear(t)

		alice := newUser(t, "Alice")
		bob := newUser(t, "Bob")

		first := entry(alice, "Alice in Wonderland")
		require.NoError(t, repo.Insert(ctx, first))
		require.NoError(t, repo.MarkReturned(ctx, first.ID))

		require.NoError(t, repo.Insert(ctx, entry(bob, "Alice in Wonderland")))

		all, err := repo.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].Returned)
		assert.False(t, all[1].Returned)
	})

	t.Run("active lookups see only open entries", func(t *testing.T) {
		defer clear(t)

		alice := newUser(t, "Alice")

		first := entry(alice, "Cosmos")
		require.NoError(t, repo.Insert(ctx, first))

		h, err := repo.SelectActive(ctx, alice, "Cosmos")
		require.NoError(t, err)
		assert.Equal(t, first.ID, h.ID)

		h, err = repo.SelectAnyActive(ctx, "Cosmos")
		require.NoError(t, err)
		assert.Equal(t, first.ID, h.ID)

		require.NoError(t, repo.MarkReturned(ctx, first.ID))

		_, err = repo.SelectActive(ctx, alice, "Cosmos")
		assert.ErrorIs(t, err, loan.ErrNotFound)
		_, err = repo.SelectAnyActive(ctx, "Cosmos")
		assert.ErrorIs(t, err, loan.ErrNotFound)
	})

	t.Run("double return reports ErrNotFound", func(t *testing.T) {
		defer clear(t)

		alice := newUser(t, "Alice")

		first := entry(alice, "Cosmos")
		require.NoError(t, repo.Insert(ctx, first))
		require.NoError(t, repo.MarkReturned(ctx, first.ID))

		err := repo.MarkReturned(ctx, first.ID)
		assert.ErrorIs(t, err, loan.ErrNotFound)
	})

	t.Run("history per user is chronological", func(t *testing.T) {
		defer clear(t)

		alice := newUser(t, "Alice")

		first := entry(alice, "Cosmos")
		require.NoError(t, repo.Insert(ctx, first))
		require.NoError(t, repo.MarkReturned(ctx, first.ID))

		second := entry(alice, "Alice in Wonderland")
		second.CreatedAt = first.CreatedAt.Add(time.Minute)
		require.NoError(t, repo.Insert(ctx, second))

		histories, err := repo.SelectByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, histories, 2)
		assert.Equal(t, "Cosmos", histories[0].BookName)
		assert.Equal(t, "Alice in Wonderland", histories[1].BookName)
	})
}
