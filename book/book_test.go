package book_test

import (
	"encoding/json"
	"testing"

	"github.com/libraryapp/lending/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		b, err := book.New("Alice in Wonderland", book.Computer)
		require.NoError(t, err)
		assert.Equal(t, "Alice in Wonderland", b.Name)
		assert.Equal(t, book.Computer, b.Category)
		assert.Zero(t, b.ID)
	})
	t.Run("blank name", func(t *testing.T) {
		_, err := book.New("", book.Computer)
		assert.ErrorIs(t, err, book.ErrBlankName)
	})
	t.Run("whitespace-only name", func(t *testing.T) {
		_, err := book.New("   \t ", book.Computer)
		assert.ErrorIs(t, err, book.ErrBlankName)
	})
	t.Run("invalid category", func(t *testing.T) {
		_, err := book.New("Alice in Wonderland", book.Category(42))
		assert.ErrorIs(t, err, book.ErrInvalidCategory)
	})
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "COMPUTER", book.Computer.String())
	assert.Equal(t, "SCIENCE", book.Science.String())
	assert.Equal(t, "SOCIETY", book.Society.String())
	assert.Equal(t, "LANGUAGE", book.Language.String())
	assert.Equal(t, "ARTS", book.Arts.String())
	assert.Equal(t, "UNKNOWN", book.Category(0).String())
}

func TestNewCategory(t *testing.T) {
	assert.Equal(t, book.Science, book.NewCategory("SCIENCE"))
	assert.Equal(t, book.Category(0), book.NewCategory("COOKING"))
	assert.Error(t, book.NewCategory("COOKING").Validate())
}

func TestCategoryJSON(t *testing.T) {
	data, err := json.Marshal(book.Language)
	require.NoError(t, err)
	assert.Equal(t, `"LANGUAGE"`, string(data))

	var c book.Category
	require.NoError(t, json.Unmarshal([]byte(`"ARTS"`), &c))
	assert.Equal(t, book.Arts, c)

	assert.Error(t, json.Unmarshal([]byte(`"COOKING"`), &c))
}
