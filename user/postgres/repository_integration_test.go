//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/libraryapp/lending/internal/testutil"
	"github.com/libraryapp/lending/user"
	"github.com/libraryapp/lending/user/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* Run with: go test -tags=integration ./user/postgres/...
 */

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()
	pc, cleanup := testutil.SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := postgres.NewRepository(pc.DB)

	t.Run("insert then select by name", func(t *testing.T) {
		defer func() { require.NoError(t, repo.DeleteAll(ctx)) }()

		age := 28
		id, err := repo.Insert(ctx, user.New("Alice", &age))
		require.NoError(t, err)

		u, err := repo.SelectByName(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "Alice", u.Name)
		require.NotNil(t, u.Age)
		assert.Equal(t, 28, *u.Age)
	})

	t.Run("absent name reports ErrNotFound", func(t *testing.T) {
		_, err := repo.SelectByName(ctx, "Nobody")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("duplicate names resolve to the first registration", func(t *testing.T) {
		defer func() { require.NoError(t, repo.DeleteAll(ctx)) }()

		first, err := repo.Insert(ctx, user.New("Alice", nil))
		require.NoError(t, err)
		_, err = repo.Insert(ctx, user.New("Alice", nil))
		require.NoError(t, err)

		u, err := repo.SelectByName(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, first, u.ID)
	})

	t.Run("nil age round-trips as NULL", func(t *testing.T) {
		defer func() { require.NoError(t, repo.DeleteAll(ctx)) }()

		_, err := repo.Insert(ctx, user.New("Bob", nil))
		require.NoError(t, err)

		u, err := repo.SelectByName(ctx, "Bob")
		require.NoError(t, err)
		assert.Nil(t, u.Age)
	})
}
