package book

import "context"

/* Interfaces abstract behavior, not things.
 * They are written for users of the API, not just for testing.
 */

// Reader provides read operations for the catalog.
type Reader interface {
	SelectAll(ctx context.Context) ([]Book, error)
}

// Writer provides write operations for the catalog. DeleteAll exists for
// test teardown only; books are never deleted in normal operation.
type Writer interface {
	Insert(ctx context.Context, b Book) (int64, error)
	DeleteAll(ctx context.Context) error
}

/* Interface composition */

type Repository interface {
	Reader
	Writer
}
