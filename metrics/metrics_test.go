package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/libraryapp/lending/book"
	bookmocks "github.com/libraryapp/lending/book/mocks"
	"github.com/libraryapp/lending/lending"
	"github.com/libraryapp/lending/lending/mocks"
	"github.com/libraryapp/lending/loan"
	"github.com/libraryapp/lending/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/* One exporter for the whole test: the prometheus bridge registers itself
 * on the default registry and a second registration would collide.
 */

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	catalog := bookmocks.NewRepository(t)
	catalog.On("SelectAll", mock.Anything).Return([]book.Book{
		{ID: 1, Name: "Alice in Wonderland", Category: book.Computer},
	}, nil).Maybe()

	exporter, err := metrics.NewExporter(catalog)
	require.NoError(t, err)
	defer exporter.Shutdown(ctx)

	t.Run("passes results and errors through", func(t *testing.T) {
		next := mocks.NewUseCase(t)
		recorder, err := exporter.NewRecorder(next)
		require.NoError(t, err)

		next.On("LoanBook", ctx, "Alice", "Cosmos").
			Return(loan.History{ID: "loan-1", BookName: "Cosmos"}, nil).Once()
		h, err := recorder.LoanBook(ctx, "Alice", "Cosmos")
		require.NoError(t, err)
		assert.Equal(t, "loan-1", h.ID)

		next.On("LoanBook", ctx, "Bob", "Cosmos").
			Return(loan.History{}, lending.ErrBookAlreadyLoaned).Once()
		_, err = recorder.LoanBook(ctx, "Bob", "Cosmos")
		assert.ErrorIs(t, err, lending.ErrBookAlreadyLoaned)

		next.On("ReturnBook", ctx, "Alice", "Cosmos").Return(nil).Once()
		require.NoError(t, recorder.ReturnBook(ctx, "Alice", "Cosmos"))
	})

	t.Run("handler serves prometheus format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()

		exporter.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Body.String())
	})
}
