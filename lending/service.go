package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/libraryapp/lending/book"
	"github.com/libraryapp/lending/loan"
	"github.com/libraryapp/lending/user"
)

/* Service is the business logic layer orchestrating the catalog, the user
 * registry and the loan ledger. Pointer semantics: it is an API, not data.
 */

// UseCase defines the lending operations offered to transports and other
// callers.
type UseCase interface {
	SaveBook(ctx context.Context, name string, category book.Category) (book.Book, error)
	RegisterUser(ctx context.Context, name string, age *int) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UserLoans(ctx context.Context, userName string) ([]loan.History, error)
	LoanBook(ctx context.Context, userName, bookName string) (loan.History, error)
	ReturnBook(ctx context.Context, userName, bookName string) error
	BookStatistics(ctx context.Context) ([]BookStat, error)
}

type Service struct {
	Books book.Repository
	Users user.Repository
	Loans loan.Repository
}

// NewService creates the lending service with its storage dependencies.
func NewService(books book.Repository, users user.Repository, loans loan.Repository) *Service {
	return &Service{
		Books: books,
		Users: users,
		Loans: loans,
	}
}

// SaveBook validates and registers a new book in the catalog. Duplicate
// names are allowed: they are distinct physical copies.
func (s *Service) SaveBook(ctx context.Context, name string, category book.Category) (book.Book, error) {
	b, err := book.New(name, category)
	if err != nil {
		return book.Book{}, err
	}

	id, err := s.Books.Insert(ctx, b)
	if err != nil {
		return book.Book{}, fmt.Errorf("inserting book: %w", err)
	}
	b.ID = id

	return b, nil
}

// RegisterUser creates a new user in the registry.
func (s *Service) RegisterUser(ctx context.Context, name string, age *int) (user.User, error) {
	u := user.New(name, age)

	id, err := s.Users.Insert(ctx, u)
	if err != nil {
		return user.User{}, fmt.Errorf("inserting user: %w", err)
	}
	u.ID = id

	return u, nil
}

// ListUsers returns all registered users.
func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.Users.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting users: %w", err)
	}
	return users, nil
}

// UserLoans returns a user's full loan history, open or returned.
func (s *Service) UserLoans(ctx context.Context, userName string) ([]loan.History, error) {
	u, err := s.findUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	histories, err := s.Loans.SelectByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("selecting loan histories: %w", err)
	}
	return histories, nil
}

// LoanBook lends a book to a user. The ledger may hold at most one open
// entry per book name: if any borrower currently has the book, the loan is
// rejected and nothing is written.
//
// The pre-check below gives the common case a clean answer; the race with a
// concurrent loan of the same book is closed by the ledger's uniqueness
// constraint, which Insert reports as loan.ErrOpenLoanExists.
func (s *Service) LoanBook(ctx context.Context, userName, bookName string) (loan.History, error) {
	u, err := s.findUser(ctx, userName)
	if err != nil {
		return loan.History{}, err
	}

	_, err = s.Loans.SelectAnyActive(ctx, bookName)
	if err == nil {
		return loan.History{}, ErrBookAlreadyLoaned
	}
	if !errors.Is(err, loan.ErrNotFound) {
		return loan.History{}, fmt.Errorf("checking open loans: %w", err)
	}

	h := loan.History{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		BookName:  bookName,
		Returned:  false,
		CreatedAt: time.Now(),
	}

	if err := s.Loans.Insert(ctx, h); err != nil {
		if errors.Is(err, loan.ErrOpenLoanExists) {
			return loan.History{}, ErrBookAlreadyLoaned
		}
		return loan.History{}, fmt.Errorf("recording loan: %w", err)
	}

	return h, nil
}

// ReturnBook closes the user's open loan for the book. The catalog is not
// consulted: a loan recorded by name stays returnable even if the book
// record was removed since.
func (s *Service) ReturnBook(ctx context.Context, userName, bookName string) error {
	u, err := s.findUser(ctx, userName)
	if err != nil {
		return err
	}

	h, err := s.Loans.SelectActive(ctx, u.ID, bookName)
	if errors.Is(err, loan.ErrNotFound) {
		return ErrNoActiveLoan
	}
	if err != nil {
		return fmt.Errorf("finding active loan: %w", err)
	}

	if err := s.Loans.MarkReturned(ctx, h.ID); err != nil {
		if errors.Is(err, loan.ErrNotFound) {
			// Closed by a concurrent return between lookup and update.
			return ErrNoActiveLoan
		}
		return fmt.Errorf("marking loan returned: %w", err)
	}

	return nil
}

// BookStatistics counts catalog entries per category, in first-seen
// category order.
func (s *Service) BookStatistics(ctx context.Context) ([]BookStat, error) {
	books, err := s.Books.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}

	return statistics(books), nil
}

// findUser is the resolve-or-fail boundary for user lookups: the optional
// repository result becomes ErrUserNotFound here, not ad hoc at each caller.
func (s *Service) findUser(ctx context.Context, name string) (user.User, error) {
	u, err := s.Users.SelectByName(ctx, name)
	if errors.Is(err, user.ErrNotFound) {
		return user.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, name)
	}
	if err != nil {
		return user.User{}, fmt.Errorf("selecting user: %w", err)
	}
	return u, nil
}
