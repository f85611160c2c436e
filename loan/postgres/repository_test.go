//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/libraryapp/lending/loan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Insert_Unit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()
		now := time.Now()

		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO loan_histories (id, user_id, book_name, returned, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		)).WithArgs("loan-1", int64(7), "Alice in Wonderland", false, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Insert(ctx, loan.History{
			ID:        "loan-1",
			UserID:    7,
			BookName:  "Alice in Wonderland",
			Returned:  false,
			CreatedAt: now,
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrOpenLoanExists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()
		now := time.Now()

		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO loan_histories (id, user_id, book_name, returned, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		)).WithArgs("loan-2", int64(8), "Alice in Wonderland", false, now).
			WillReturnError(&pq.Error{Code: "23505"})

		err = repo.Insert(ctx, loan.History{
			ID:        "loan-2",
			UserID:    8,
			BookName:  "Alice in Wonderland",
			Returned:  false,
			CreatedAt: now,
		})

		assert.ErrorIs(t, err, loan.ErrOpenLoanExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SelectActive_Unit(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "user_id", "book_name", "returned", "created_at"}).
			AddRow("loan-1", 7, "Alice in Wonderland", false, now)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		WHERE user_id = $1 AND book_name = $2 AND NOT returned`,
		)).WithArgs(int64(7), "Alice in Wonderland").WillReturnRows(rows)

		h, err := repo.SelectActive(ctx, 7, "Alice in Wonderland")

		require.NoError(t, err)
		assert.Equal(t, "loan-1", h.ID)
		assert.False(t, h.Returned)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no open entry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		WHERE user_id = $1 AND book_name = $2 AND NOT returned`,
		)).WithArgs(int64(7), "Cosmos").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "book_name", "returned", "created_at"}))

		_, err = repo.SelectActive(ctx, 7, "Cosmos")

		assert.ErrorIs(t, err, loan.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkReturned_Unit(t *testing.T) {
	t.Run("flips open entry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`UPDATE loan_histories SET returned = TRUE WHERE id = $1 AND NOT returned`,
		)).WithArgs("loan-1").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkReturned(ctx, "loan-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already returned reports ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`UPDATE loan_histories SET returned = TRUE WHERE id = $1 AND NOT returned`,
		)).WithArgs("loan-1").WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.MarkReturned(ctx, "loan-1")

		assert.ErrorIs(t, err, loan.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
