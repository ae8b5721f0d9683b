package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
)

// AmountRequest is the body of single-amount movements. Amounts may be sent
// as JSON numbers or strings.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// InvestRequest is the body of POST /wallets/:userId/invest
type InvestRequest struct {
	Amount decimal.Decimal `json:"amount"`
	TripID string          `json:"tripId"`
}

// ReturnRequest is the body of POST /wallets/:userId/return
type ReturnRequest struct {
	Principal decimal.Decimal `json:"principal"`
	Returns   decimal.Decimal `json:"returns"`
}

// WalletUpdateRequest is the body of PUT /wallets/:userId. Absent fields are left as is.
type WalletUpdateRequest struct {
	Balance        *decimal.Decimal `json:"balance"`
	LockedAmount   *decimal.Decimal `json:"locked_amount"`
	EscrowedAmount *decimal.Decimal `json:"escrowed_amount"`
	TotalInvested  *decimal.Decimal `json:"total_invested"`
	TotalReturns   *decimal.Decimal `json:"total_returns"`
}

// ToDelta converts the request into a wallet delta
func (r WalletUpdateRequest) ToDelta() (entity.WalletDelta, error) {
	var delta entity.WalletDelta
	fields := []struct {
		src *decimal.Decimal
		dst **entity.Money
	}{
		{r.Balance, &delta.Balance},
		{r.LockedAmount, &delta.LockedAmount},
		{r.EscrowedAmount, &delta.EscrowedAmount},
		{r.TotalInvested, &delta.TotalInvested},
		{r.TotalReturns, &delta.TotalReturns},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		m, err := entity.NewMoney(*f.src)
		if err != nil {
			return entity.WalletDelta{}, err
		}
		*f.dst = &m
	}
	return delta, nil
}

// WalletResponse is the wallet snapshot returned by every wallet endpoint
type WalletResponse struct {
	UserID         string               `json:"user_id"`
	Balance        json.Number          `json:"balance"`
	LockedAmount   json.Number          `json:"locked_amount"`
	EscrowedAmount json.Number          `json:"escrowed_amount"`
	TotalInvested  json.Number          `json:"total_invested"`
	TotalReturns   json.Number          `json:"total_returns"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Transaction    *TransactionResponse `json:"transaction,omitempty"`
}

// NewWalletResponse renders a wallet snapshot
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		UserID:         w.UserID,
		Balance:        Number(w.Balance),
		LockedAmount:   Number(w.LockedAmount),
		EscrowedAmount: Number(w.EscrowedAmount),
		TotalInvested:  Number(w.TotalInvested),
		TotalReturns:   Number(w.TotalReturns),
		CreatedAt:      w.CreatedAt.UTC(),
		UpdatedAt:      w.UpdatedAt.UTC(),
	}
}

// NewMovementResponse renders the wallet after a movement with the entry it wrote
func NewMovementResponse(r *usecase.MovementResult) WalletResponse {
	resp := NewWalletResponse(r.Wallet)
	txn := NewTransactionResponse(r.Transaction)
	resp.Transaction = &txn
	return resp
}

// Number renders money as a JSON number with two decimals
func Number(m entity.Money) json.Number {
	return json.Number(m.String())
}
