package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/libraryapp/lending/book"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Repository is the PostgreSQL implementation of book.Repository.
type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an existing connection pool. The pool is shared with
// the other repositories and owned by the caller.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Insert persists a new book and returns the generated ID.
func (r *Repository) Insert(ctx context.Context, b book.Book) (int64, error) {
	query := `
		INSERT INTO books (name, category)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, b.Name, int(b.Category)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting book: %w", err)
	}

	return id, nil
}

// SelectAll returns all catalog entries in insertion order. An empty catalog
// yields an empty slice, not an error: statistics over an empty catalog are
// simply empty.
func (r *Repository) SelectAll(ctx context.Context) ([]book.Book, error) {
	query := "SELECT id, name, category FROM books ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}

	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Category); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}

// DeleteAll clears the catalog. Test teardown only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM books")
	if err != nil {
		return fmt.Errorf("deleting books: %w", err)
	}
	return nil
}

// CreateTable creates the books table (used at startup and by tests).
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS books (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category INTEGER NOT NULL
		)
	`

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("creating books table: %w", err)
	}

	return nil
}

// DropTable removes the books table (useful for tests).
func (r *Repository) DropTable(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS books CASCADE")
	if err != nil {
		return fmt.Errorf("dropping books table: %w", err)
	}
	return nil
}
