package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/libraryapp/lending/lending"
)

type userRequest struct {
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}

type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}

type loanResponse struct {
	ID        string    `json:"id"`
	BookName  string    `json:"bookName"`
	Returned  bool      `json:"returned"`
	CreatedAt time.Time `json:"createdAt"`
}

func postUsers(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ur userRequest
		if err := json.NewDecoder(r.Body).Decode(&ur); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if ur.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		u, err := svc.RegisterUser(r.Context(), ur.Name, ur.Age)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := userResponse{ID: u.ID, Name: u.Name, Age: u.Age}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func getUsers(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := []userResponse{}
		for _, u := range users {
			result = append(result, userResponse{ID: u.ID, Name: u.Name, Age: u.Age})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func getUserLoans(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		histories, err := svc.UserLoans(r.Context(), name)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := []loanResponse{}
		for _, h := range histories {
			result = append(result, loanResponse{
				ID:        h.ID,
				BookName:  h.BookName,
				Returned:  h.Returned,
				CreatedAt: h.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
