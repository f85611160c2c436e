package user

import "context"

// Reader provides read operations for the registry.
type Reader interface {
	// SelectByName returns the first user with the given name, or
	// ErrNotFound when absent.
	SelectByName(ctx context.Context, name string) (User, error)
	SelectAll(ctx context.Context) ([]User, error)
}

// Writer provides write operations for the registry. DeleteAll exists for
// test teardown only.
type Writer interface {
	Insert(ctx context.Context, u User) (int64, error)
	DeleteAll(ctx context.Context) error
}

type Repository interface {
	Reader
	Writer
}
