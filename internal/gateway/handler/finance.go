package handler

import (
	"net/http"

	"omniportal/internal/gateway/entity"
)

func (s *Service) HandleFinance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetFinanceData(r.Context()))
}

type transactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
}

// HandleMoreTransactions appends the next statement batch and returns it.
func (s *Service) HandleMoreTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, transactionsResponse{
		Transactions: s.store.LoadMoreTransactions(r.Context()),
	})
}
