package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents the database model for wallets, one row per user
type Wallet struct {
	UserID         string          `gorm:"primaryKey;size:64"`
	Balance        decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	LockedAmount   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	EscrowedAmount decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	TotalInvested  decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	TotalReturns   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
