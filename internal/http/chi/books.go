package chi

import (
	"encoding/json"
	"net/http"

	"github.com/libraryapp/lending/book"
	"github.com/libraryapp/lending/lending"
)

/* Web-layer DTOs, separate from domain entities: this is the only place
 * with json tags for books.
 */

type bookRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type bookResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type bookStatResponse struct {
	Category string `json:"type"`
	Count    int    `json:"count"`
}

func postBooks(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b, err := svc.SaveBook(r.Context(), br.Name, book.NewCategory(br.Category))
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := bookResponse{
			ID:       b.ID,
			Name:     b.Name,
			Category: b.Category.String(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func getBookStats(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.BookStatistics(r.Context())
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := []bookStatResponse{}
		for _, s := range stats {
			result = append(result, bookStatResponse{
				Category: s.Category.String(),
				Count:    s.Count,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
