package chi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/libraryapp/lending/book"
	"github.com/libraryapp/lending/lending"
)

// Handlers sets up the lending API routes. metricsHandler is optional.
func Handlers(ctx context.Context, svc lending.UseCase, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("library-lending", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/books", postBooks(svc))
		r.Method(http.MethodGet, "/books/stats", getBookStats(svc))

		r.Method(http.MethodPost, "/users", postUsers(svc))
		r.Method(http.MethodGet, "/users", getUsers(svc))
		r.Method(http.MethodGet, "/users/{name}/loans", getUserLoans(svc))

		r.Method(http.MethodPost, "/loans", postLoans(svc))
		r.Method(http.MethodPost, "/returns", postReturns(svc))
	})

	return r
}

// statusFromError maps domain errors onto HTTP status codes. Anything not in
// the taxonomy is a plain 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, book.ErrBlankName), errors.Is(err, book.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, lending.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, lending.ErrBookAlreadyLoaned), errors.Is(err, lending.ErrNoActiveLoan):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
