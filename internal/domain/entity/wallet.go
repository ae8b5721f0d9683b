package entity

import (
	"fmt"
	"time"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// MaxUserIDLength bounds the opaque external user identifier
const MaxUserIDLength = 64

// Bucket names as they appear in errors and storage
const (
	BucketBalance        = "balance"
	BucketLockedAmount   = "locked_amount"
	BucketEscrowedAmount = "escrowed_amount"
	BucketTotalInvested  = "total_invested"
	BucketTotalReturns   = "total_returns"
)

// Wallet is the per-user aggregate of fund buckets.
//
// Balance, EscrowedAmount and TotalInvested never go negative through a money
// movement. Only Deposit and Withdraw change Holdings(); every other movement
// shifts value between buckets. LockedAmount is reserved and is only written by
// the administrative update path.
type Wallet struct {
	UserID         string
	Balance        Money
	LockedAmount   Money
	EscrowedAmount Money
	TotalInvested  Money
	TotalReturns   Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWallet provisions a wallet seeded with the initial balance
func NewWallet(userID string, initialBalance Money, now time.Time) (*Wallet, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", errs.ErrInvalidAmount)
	}

	return &Wallet{
		UserID:    userID,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateUserID checks the opaque user identifier
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user ID cannot be empty", errs.ErrInvalidUserID)
	}
	if len(userID) > MaxUserIDLength {
		return fmt.Errorf("%w: user ID longer than %d characters", errs.ErrInvalidUserID, MaxUserIDLength)
	}
	return nil
}

// Holdings is the conserved sum balance + escrowed + invested
func (w *Wallet) Holdings() Money {
	return w.Balance.Add(w.EscrowedAmount).Add(w.TotalInvested)
}

// Clone returns a copy that can be mutated independently
func (w *Wallet) Clone() *Wallet {
	c := *w
	return &c
}

// CheckInvariants reports the first bucket that violates non-negativity
func (w *Wallet) CheckInvariants() error {
	buckets := []struct {
		name  string
		value Money
	}{
		{BucketBalance, w.Balance},
		{BucketEscrowedAmount, w.EscrowedAmount},
		{BucketTotalInvested, w.TotalInvested},
	}
	for _, b := range buckets {
		if b.value.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s) for user %s", errs.ErrInternal, b.name, b.value, w.UserID)
		}
	}
	return nil
}

// Apply overwrites the buckets present in the delta. It bypasses conservation
// and writes no ledger entry; it only refuses negative values.
func (w *Wallet) Apply(delta WalletDelta, now time.Time) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	if delta.Balance != nil {
		w.Balance = *delta.Balance
	}
	if delta.LockedAmount != nil {
		w.LockedAmount = *delta.LockedAmount
	}
	if delta.EscrowedAmount != nil {
		w.EscrowedAmount = *delta.EscrowedAmount
	}
	if delta.TotalInvested != nil {
		w.TotalInvested = *delta.TotalInvested
	}
	if delta.TotalReturns != nil {
		w.TotalReturns = *delta.TotalReturns
	}
	if !delta.IsEmpty() {
		w.UpdatedAt = now
	}
	return nil
}

func (w *Wallet) insufficient(bucket string, requested, available Money) error {
	return errs.NewInsufficientFundsError(w.UserID, bucket, requested.String(), available.String())
}
