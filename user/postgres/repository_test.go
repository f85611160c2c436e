//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/libraryapp/lending/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Insert_Unit(t *testing.T) {
	t.Run("with age", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id"}).AddRow(7)
		mock.ExpectQuery(regexp.QuoteMeta(
			`INSERT INTO users (name, age)
		VALUES ($1, $2)
		RETURNING id`,
		)).WithArgs("Alice", int64(30)).WillReturnRows(rows)

		age := 30
		id, err := repo.Insert(ctx, user.New("Alice", &age))

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without age stores NULL", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id"}).AddRow(8)
		mock.ExpectQuery(regexp.QuoteMeta(
			`INSERT INTO users (name, age)
		VALUES ($1, $2)
		RETURNING id`,
		)).WithArgs("Bob", nil).WillReturnRows(rows)

		id, err := repo.Insert(ctx, user.New("Bob", nil))

		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SelectByName_Unit(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(7, "Alice", 30)
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, name, age FROM users WHERE name = $1 ORDER BY id LIMIT 1`,
		)).WithArgs("Alice").WillReturnRows(rows)

		u, err := repo.SelectByName(ctx, "Alice")

		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "Alice", u.Name)
		require.NotNil(t, u.Age)
		assert.Equal(t, 30, *u.Age)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, name, age FROM users WHERE name = $1 ORDER BY id LIMIT 1`,
		)).WithArgs("Nobody").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}))

		_, err = repo.SelectByName(ctx, "Nobody")

		assert.ErrorIs(t, err, user.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NULL age maps to nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(8, "Bob", nil)
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, name, age FROM users WHERE name = $1 ORDER BY id LIMIT 1`,
		)).WithArgs("Bob").WillReturnRows(rows)

		u, err := repo.SelectByName(ctx, "Bob")

		require.NoError(t, err)
		assert.Nil(t, u.Age)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
