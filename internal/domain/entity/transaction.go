package entity

import (
	"fmt"
	"time"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// TransactionType is the direction of a ledger entry relative to the wallet
type TransactionType string

// Category classifies the business reason of a ledger entry
type Category string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Categories
const (
	CategoryInvestment Category = "investment"
	CategoryReturn     Category = "return"
	CategoryPayment    Category = "payment"
	CategoryRefund     Category = "refund"
	CategoryFee        Category = "fee"
	CategoryWithdrawal Category = "withdrawal"
)

// Transaction is an immutable ledger entry recording one balance-affecting event.
// Fields are exported for mapping only; nothing mutates a Transaction after NewTransaction.
type Transaction struct {
	ID           string
	UserID       string
	Type         TransactionType
	Amount       Money
	Category     Category
	Description  string
	BalanceAfter Money // snapshot of the balance bucket after the operation
	Timestamp    time.Time
}

// EntryDraft is the part of a ledger entry decided by a money movement,
// before an identifier and timestamp are assigned
type EntryDraft struct {
	Type         TransactionType
	Category     Category
	Amount       Money
	Description  string
	BalanceAfter Money
}

// NewTransaction builds a ledger entry from a draft
func NewTransaction(id, userID string, draft EntryDraft, timestamp time.Time) (*Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: transaction ID cannot be empty", errs.ErrInvalidRequest)
	}
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if !IsValidType(string(draft.Type)) {
		return nil, fmt.Errorf("%w: invalid transaction type %q", errs.ErrInvalidRequest, draft.Type)
	}
	if !IsValidCategory(string(draft.Category)) {
		return nil, fmt.Errorf("%w: invalid category %q", errs.ErrInvalidRequest, draft.Category)
	}
	if !draft.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: ledger entry amount must be positive", errs.ErrInvalidAmount)
	}

	return &Transaction{
		ID:           id,
		UserID:       userID,
		Type:         draft.Type,
		Amount:       draft.Amount,
		Category:     draft.Category,
		Description:  draft.Description,
		BalanceAfter: draft.BalanceAfter,
		Timestamp:    timestamp,
	}, nil
}

// IsCredit returns true if this entry increased the wallet's holdings
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// IsDebit returns true if this entry decreased the wallet's holdings
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsValidType validates if the transaction type is allowed
func IsValidType(transactionType string) bool {
	return transactionType == string(TypeCredit) || transactionType == string(TypeDebit)
}

// IsValidCategory validates if the category is allowed
func IsValidCategory(category string) bool {
	switch Category(category) {
	case CategoryInvestment, CategoryReturn, CategoryPayment, CategoryRefund, CategoryFee, CategoryWithdrawal:
		return true
	}
	return false
}

// TransactionFilter narrows a history query. Zero values mean "no filter".
type TransactionFilter struct {
	Type     TransactionType
	Category Category
	Limit    int
}

// MaxHistoryLimit caps a single history page
const MaxHistoryLimit = 1000

// Validate checks the filter values
func (f TransactionFilter) Validate() error {
	if f.Type != "" && !IsValidType(string(f.Type)) {
		return fmt.Errorf("%w: invalid transaction type %q", errs.ErrInvalidRequest, f.Type)
	}
	if f.Category != "" && !IsValidCategory(string(f.Category)) {
		return fmt.Errorf("%w: invalid category %q", errs.ErrInvalidRequest, f.Category)
	}
	if f.Limit < 0 || f.Limit > MaxHistoryLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d", errs.ErrInvalidRequest, MaxHistoryLimit)
	}
	return nil
}
