package book

import (
	"bytes"
	"fmt"
)

// Category classifies a book for statistics purposes.
type Category int

const (
	Computer Category = iota + 1
	Science
	Society
	Language
	Arts
)

func (c Category) String() string {
	switch c {
	case Computer:
		return "COMPUTER"
	case Science:
		return "SCIENCE"
	case Society:
		return "SOCIETY"
	case Language:
		return "LANGUAGE"
	case Arts:
		return "ARTS"
	}
	return "UNKNOWN"
}

// NewCategory creates a Category from its string form. Unknown strings map
// to the zero value, which fails Validate.
func NewCategory(s string) Category {
	switch s {
	case "COMPUTER":
		return Computer
	case "SCIENCE":
		return Science
	case "SOCIETY":
		return Society
	case "LANGUAGE":
		return Language
	case "ARTS":
		return Arts
	}
	return Category(0)
}

// Validate checks if the category is one of the known values.
func (c Category) Validate() error {
	if c < Computer || c > Arts {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, c)
	}
	return nil
}

// MarshalJSON renders the category as its string form.
func (c Category) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(c.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON parses the string form produced by MarshalJSON.
func (c *Category) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	parsed := NewCategory(s)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("parsing category %q: %w", s, err)
	}
	*c = parsed
	return nil
}
