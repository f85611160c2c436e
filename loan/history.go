package loan

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a ledger lookup matches no open entry.
	ErrNotFound = errors.New("loan not found")

	// ErrOpenLoanExists is returned by Insert when the book already has an
	// open entry. The storage layer enforces this with a uniqueness
	// constraint, so concurrent loans of the same book cannot both succeed.
	ErrOpenLoanExists = errors.New("book already has an open loan")
)

// History is one lending event in the ledger. Entries are created once per
// loan and mutated exactly once, when the book is returned.
//
// BookName is a denormalized copy of the book's name at loan time, not a
// reference into the catalog: a loan stays meaningful (and returnable) even
// if the catalog changes afterwards.
type History struct {
	ID        string
	UserID    int64
	BookName  string
	Returned  bool
	CreatedAt time.Time
}
