package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/libraryapp/lending/user"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Repository is the PostgreSQL implementation of user.Repository.
type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an existing connection pool owned by the caller.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Insert persists a new user and returns the generated ID.
func (r *Repository) Insert(ctx context.Context, u user.User) (int64, error) {
	query := `
		INSERT INTO users (name, age)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	var age sql.NullInt64
	if u.Age != nil {
		age = sql.NullInt64{Int64: int64(*u.Age), Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query, u.Name, age).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	return id, nil
}

// SelectByName returns the first user with the given name. Names are a
// practical key only, so duplicates resolve to the lowest id.
func (r *Repository) SelectByName(ctx context.Context, name string) (user.User, error) {
	query := "SELECT id, name, age FROM users WHERE name = $1 ORDER BY id LIMIT 1"

	var u user.User
	var age sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&u.ID, &u.Name, &age)

	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("selecting user by name: %w", err)
	}

	if age.Valid {
		a := int(age.Int64)
		u.Age = &a
	}

	return u, nil
}

// SelectAll returns all registered users in insertion order.
func (r *Repository) SelectAll(ctx context.Context) ([]user.User, error) {
	query := "SELECT id, name, age FROM users ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}

	for rows.Next() {
		var u user.User
		var age sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Name, &age); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		if age.Valid {
			a := int(age.Int64)
			u.Age = &a
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

// DeleteAll clears the registry. Test teardown only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users")
	if err != nil {
		return fmt.Errorf("deleting users: %w", err)
	}
	return nil
}

// CreateTable creates the users table (used at startup and by tests).
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER
		)
	`

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	return nil
}

// DropTable removes the users table (useful for tests).
func (r *Repository) DropTable(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS users CASCADE")
	if err != nil {
		return fmt.Errorf("dropping users table: %w", err)
	}
	return nil
}
