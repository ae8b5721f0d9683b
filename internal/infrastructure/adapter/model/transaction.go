package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries.
// Rows are inserted once and never updated.
type Transaction struct {
	ID           string          `gorm:"primaryKey;size:64"`
	UserID       string          `gorm:"not null;size:64;index:idx_transactions_user_timestamp,priority:1"`
	Type         string          `gorm:"not null;size:10"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Category     string          `gorm:"not null;size:20"`
	Description  string          `gorm:"type:text"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Timestamp    time.Time       `gorm:"not null;index:idx_transactions_user_timestamp,priority:2,sort:desc"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
