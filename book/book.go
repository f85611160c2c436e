package book

import (
	"errors"
	"strings"
)

// Validation errors returned at construction time. Construction never
// completes when one of these is returned.
var (
	ErrBlankName       = errors.New("book name cannot be blank")
	ErrInvalidCategory = errors.New("invalid book category")
)

/* No tags here: Book represents a catalog entry in business terms,
 * not its web or storage shape
 */

// Book is a single physical copy in the catalog. Multiple copies with the
// same name are allowed as distinct records.
type Book struct {
	ID       int64
	Name     string
	Category Category
}

// New validates and builds a Book. The name must be non-blank; the category
// must be one of the known values.
func New(name string, category Category) (Book, error) {
	if strings.TrimSpace(name) == "" {
		return Book{}, ErrBlankName
	}
	if err := category.Validate(); err != nil {
		return Book{}, err
	}
	return Book{
		Name:     name,
		Category: category,
	}, nil
}
