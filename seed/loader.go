package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/libraryapp/lending/book"
	"github.com/libraryapp/lending/lending"
	"gopkg.in/yaml.v3"
)

/* Loader reads an initial catalog from a YAML file and registers it through
 * the lending service at startup. Entries go through the same validation as
 * any other registration.
 */

// Config represents the structure of the seed file.
type Config struct {
	Books []BookConfig `yaml:"books"`
}

// BookConfig represents a single book in the YAML file.
type BookConfig struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type entry struct {
	name     string
	category book.Category
}

// Loader holds the validated seed entries.
type Loader struct {
	entries []entry
}

// NewLoader creates an empty seed loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the seed file.
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	for _, bc := range config.Books {
		category := book.NewCategory(bc.Category)
		if _, err := book.New(bc.Name, category); err != nil {
			return fmt.Errorf("validating seed book %q: %w", bc.Name, err)
		}
		l.entries = append(l.entries, entry{name: bc.Name, category: category})
	}

	return nil
}

// Count returns the number of loaded entries.
func (l *Loader) Count() int {
	return len(l.entries)
}

// Seed registers every loaded book through the service.
func (l *Loader) Seed(ctx context.Context, svc lending.UseCase) error {
	for _, e := range l.entries {
		if _, err := svc.SaveBook(ctx, e.name, e.category); err != nil {
			return fmt.Errorf("seeding book %q: %w", e.name, err)
		}
	}
	return nil
}
