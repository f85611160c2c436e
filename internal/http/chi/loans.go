package chi

import (
	"encoding/json"
	"net/http"

	"github.com/libraryapp/lending/lending"
)

type loanRequest struct {
	UserName string `json:"userName"`
	BookName string `json:"bookName"`
}

func (lr loanRequest) validate() string {
	if lr.UserName == "" {
		return "userName is required"
	}
	if lr.BookName == "" {
		return "bookName is required"
	}
	return ""
}

func postLoans(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr loanRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if msg := lr.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		h, err := svc.LoanBook(r.Context(), lr.UserName, lr.BookName)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		result := loanResponse{
			ID:        h.ID,
			BookName:  h.BookName,
			Returned:  h.Returned,
			CreatedAt: h.CreatedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func postReturns(svc lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr loanRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if msg := lr.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		if err := svc.ReturnBook(r.Context(), lr.UserName, lr.BookName); err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
