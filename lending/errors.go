package lending

import "errors"

/* The domain errors the service surfaces to callers. Every operation aborts
 * atomically: when one of these is returned, nothing was written.
 */

var (
	// ErrUserNotFound rejects loans and returns for unknown user names.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookAlreadyLoaned rejects a loan while the book has an open loan,
	// whoever the borrower is.
	ErrBookAlreadyLoaned = errors.New("book is already on loan")

	// ErrNoActiveLoan rejects a return when the user has no open loan for
	// the book: either they never borrowed it or they already returned it.
	ErrNoActiveLoan = errors.New("no active loan for this user and book")
)
