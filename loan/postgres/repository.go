package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/libraryapp/lending/loan"
)

/* The ledger's consistency rule — at most one open loan per book name — is
 * enforced by a partial unique index, not by application-level checks alone.
 * Under concurrent inserts for the same book exactly one commits; the other
 * gets a unique violation which we surface as loan.ErrOpenLoanExists.
 */

const uniqueViolation = "23505"

// Repository is the PostgreSQL implementation of loan.Repository.
type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an existing connection pool owned by the caller.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Insert appends an open ledger entry.
func (r *Repository) Insert(ctx context.Context, h loan.History) error {
	query := `
		INSERT INTO loan_histories (id, user_id, book_name, returned, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query, h.ID, h.UserID, h.BookName, h.Returned, h.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return loan.ErrOpenLoanExists
		}
		return fmt.Errorf("inserting loan history: %w", err)
	}

	return nil
}

// SelectActive returns the open entry for this user and book.
func (r *Repository) SelectActive(ctx context.Context, userID int64, bookName string) (loan.History, error) {
	query := `
		SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		WHERE user_id = $1 AND book_name = $2 AND NOT returned
	`

	return r.selectOne(ctx, query, userID, bookName)
}

// SelectAnyActive returns an open entry for the book regardless of borrower.
func (r *Repository) SelectAnyActive(ctx context.Context, bookName string) (loan.History, error) {
	query := `
		SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		WHERE book_name = $1 AND NOT returned
	`

	return r.selectOne(ctx, query, bookName)
}

func (r *Repository) selectOne(ctx context.Context, query string, args ...any) (loan.History, error) {
	var h loan.History
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.UserID,
		&h.BookName,
		&h.Returned,
		&h.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return loan.History{}, loan.ErrNotFound
	}
	if err != nil {
		return loan.History{}, fmt.Errorf("selecting loan history: %w", err)
	}

	return h, nil
}

// SelectByUser returns a user's full loan history, oldest first.
func (r *Repository) SelectByUser(ctx context.Context, userID int64) ([]loan.History, error) {
	query := `
		SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	return r.selectMany(ctx, query, userID)
}

// SelectAll returns the whole ledger, oldest first.
func (r *Repository) SelectAll(ctx context.Context) ([]loan.History, error) {
	query := `
		SELECT id, user_id, book_name, returned, created_at
		FROM loan_histories
		ORDER BY created_at, id
	`

	return r.selectMany(ctx, query)
}

func (r *Repository) selectMany(ctx context.Context, query string, args ...any) ([]loan.History, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting loan histories: %w", err)
	}
	defer rows.Close()

	histories := []loan.History{}

	for rows.Next() {
		var h loan.History
		if err := rows.Scan(&h.ID, &h.UserID, &h.BookName, &h.Returned, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning loan history: %w", err)
		}
		histories = append(histories, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan histories: %w", err)
	}

	return histories, nil
}

// MarkReturned flips an open entry to returned. The WHERE clause only
// matches open entries, so a second return of the same entry reports
// loan.ErrNotFound.
func (r *Repository) MarkReturned(ctx context.Context, id string) error {
	query := "UPDATE loan_histories SET returned = TRUE WHERE id = $1 AND NOT returned"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking loan returned: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return loan.ErrNotFound
	}

	return nil
}

// DeleteAll clears the ledger. Test teardown only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM loan_histories")
	if err != nil {
		return fmt.Errorf("deleting loan histories: %w", err)
	}
	return nil
}

// CreateTable creates the ledger table and the partial unique index that
// backs the at-most-one-open-loan-per-book rule.
func (r *Repository) CreateTable(ctx context.Context) error {
	table := `
		CREATE TABLE IF NOT EXISTS loan_histories (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id),
			book_name TEXT NOT NULL,
			returned BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := r.DB.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("creating loan_histories table: %w", err)
	}

	index := `
		CREATE UNIQUE INDEX IF NOT EXISTS loan_histories_open_book
		ON loan_histories (book_name)
		WHERE NOT returned
	`

	if _, err := r.DB.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("creating open-loan index: %w", err)
	}

	return nil
}

// DropTable removes the ledger table (useful for tests).
func (r *Repository) DropTable(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS loan_histories CASCADE")
	if err != nil {
		return fmt.Errorf("dropping loan_histories table: %w", err)
	}
	return nil
}
