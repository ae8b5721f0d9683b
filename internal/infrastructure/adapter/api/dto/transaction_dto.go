package dto

import (
	"encoding/json"
	"time"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
)

// TransactionResponse is one ledger entry
type TransactionResponse struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Type         string      `json:"type"`
	Amount       json.Number `json:"amount"`
	Category     string      `json:"category"`
	Description  string      `json:"description"`
	BalanceAfter json.Number `json:"balance_after"`
	Timestamp    time.Time   `json:"timestamp"`
}

// TransactionQuery holds the filters of the history endpoints
type TransactionQuery struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
}

// ToFilter converts the query into a domain filter
func (q TransactionQuery) ToFilter() entity.TransactionFilter {
	return entity.TransactionFilter{
		Type:     entity.TransactionType(q.Type),
		Category: entity.Category(q.Category),
		Limit:    q.Limit,
	}
}

// NewTransactionResponse renders a ledger entry
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       Number(t.Amount),
		Category:     string(t.Category),
		Description:  t.Description,
		BalanceAfter: Number(t.BalanceAfter),
		Timestamp:    t.Timestamp.UTC(),
	}
}

// NewTransactionListResponse renders a page of ledger entries
func NewTransactionListResponse(txns []*entity.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, NewTransactionResponse(t))
	}
	return resp
}
