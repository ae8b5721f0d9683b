package entity

import (
	"fmt"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// WalletDelta is a partial overwrite of wallet buckets used by the
// administrative update path. A nil field leaves the bucket untouched.
type WalletDelta struct {
	Balance        *Money
	LockedAmount   *Money
	EscrowedAmount *Money
	TotalInvested  *Money
	TotalReturns   *Money
}

// IsEmpty reports whether no bucket is set
func (d WalletDelta) IsEmpty() bool {
	return d.Balance == nil && d.LockedAmount == nil && d.EscrowedAmount == nil &&
		d.TotalInvested == nil && d.TotalReturns == nil
}

// Fields returns the present buckets keyed by bucket name
func (d WalletDelta) Fields() map[string]Money {
	fields := make(map[string]Money, 5)
	if d.Balance != nil {
		fields[BucketBalance] = *d.Balance
	}
	if d.LockedAmount != nil {
		fields[BucketLockedAmount] = *d.LockedAmount
	}
	if d.EscrowedAmount != nil {
		fields[BucketEscrowedAmount] = *d.EscrowedAmount
	}
	if d.TotalInvested != nil {
		fields[BucketTotalInvested] = *d.TotalInvested
	}
	if d.TotalReturns != nil {
		fields[BucketTotalReturns] = *d.TotalReturns
	}
	return fields
}

// Validate rejects negative bucket values
func (d WalletDelta) Validate() error {
	for name, value := range d.Fields() {
		if value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", errs.ErrInvalidAmount, name)
		}
	}
	return nil
}
