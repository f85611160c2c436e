package loan

import "context"

// Reader provides read operations over the ledger.
type Reader interface {
	// SelectActive returns the open entry for this user and book, or
	// ErrNotFound when none exists.
	SelectActive(ctx context.Context, userID int64, bookName string) (History, error)

	// SelectAnyActive returns an open entry for the book regardless of the
	// borrower, or ErrNotFound. Used to block double-lending.
	SelectAnyActive(ctx context.Context, bookName string) (History, error)

	// SelectByUser returns every entry, open or returned, for one user in
	// chronological order.
	SelectByUser(ctx context.Context, userID int64) ([]History, error)

	SelectAll(ctx context.Context) ([]History, error)
}

// Writer provides write operations over the ledger. Entries are appended by
// Insert and flipped once by MarkReturned; nothing is deleted in normal
// flow. DeleteAll exists for test teardown only.
type Writer interface {
	// Insert appends an open entry. Returns ErrOpenLoanExists when the book
	// already has an open loan.
	Insert(ctx context.Context, h History) error

	// MarkReturned flips the entry's Returned flag. Returns ErrNotFound
	// when the entry does not exist or is already returned.
	MarkReturned(ctx context.Context, id string) error

	DeleteAll(ctx context.Context) error
}

type Repository interface {
	Reader
	Writer
}
