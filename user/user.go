package user

import "errors"

// ErrNotFound is returned when a user lookup matches no record.
var ErrNotFound = errors.New("user not found")

// User is a registered borrower. Age is optional.
//
// The domain treats names as a practical unique key: lookups are by name and
// duplicate names resolve to the first match. No uniqueness constraint is
// enforced at the entity level.
type User struct {
	ID   int64
	Name string
	Age  *int
}

// New builds a User. Age may be nil.
func New(name string, age *int) User {
	return User{
		Name: name,
		Age:  age,
	}
}
