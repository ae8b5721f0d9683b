package entity

import (
	"fmt"
	"time"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// Operation names a money movement on a wallet
type Operation string

// Money movements
const (
	OpDeposit          Operation = "add_money"
	OpWithdraw         Operation = "withdraw"
	OpMoveToEscrow     Operation = "move_to_escrow"
	OpInvest           Operation = "invest"
	OpSettle           Operation = "settle"
	OpReleaseEscrow    Operation = "release_escrow"
	OpEscrowWithdrawal Operation = "escrow_withdrawal"
	OpAdminUpdate      Operation = "admin_update"
)

// Movement is a request to move money within one wallet.
// Returns is only read by OpSettle and TripID only by OpInvest.
type Movement struct {
	Operation Operation
	Amount    Money
	Returns   Money
	TripID    string
}

// MovementPolicy holds the tunable preconditions of money movements
type MovementPolicy struct {
	// EnforceInvestedPrincipal rejects a settlement whose principal exceeds total_invested
	EnforceInvestedPrincipal bool
}

// Execute applies the movement and returns the ledger entry it produces.
// On error the wallet is left untouched.
func (w *Wallet) Execute(m Movement, policy MovementPolicy, now time.Time) (EntryDraft, error) {
	if !m.Amount.IsPositive() {
		return EntryDraft{}, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	before := *w

	var (
		draft EntryDraft
		err   error
	)
	switch m.Operation {
	case OpDeposit:
		draft = w.deposit(m.Amount)
	case OpWithdraw:
		draft, err = w.withdraw(m.Amount)
	case OpMoveToEscrow:
		draft, err = w.moveToEscrow(m.Amount)
	case OpInvest:
		draft, err = w.invest(m.Amount, m.TripID)
	case OpSettle:
		draft, err = w.settle(m.Amount, m.Returns, policy)
	case OpReleaseEscrow:
		draft, err = w.releaseEscrow(m.Amount)
	case OpEscrowWithdrawal:
		draft, err = w.withdrawFromEscrow(m.Amount)
	default:
		return EntryDraft{}, fmt.Errorf("%w: unknown operation %q", errs.ErrInvalidRequest, m.Operation)
	}
	if err != nil {
		return EntryDraft{}, err
	}
	if err := w.checkLimits(draft); err != nil {
		*w = before
		return EntryDraft{}, err
	}

	w.UpdatedAt = now
	return draft, nil
}

// checkLimits rejects a result that the store could not hold exactly
func (w *Wallet) checkLimits(draft EntryDraft) error {
	buckets := []struct {
		name  string
		value Money
	}{
		{BucketBalance, w.Balance},
		{BucketLockedAmount, w.LockedAmount},
		{BucketEscrowedAmount, w.EscrowedAmount},
		{BucketTotalInvested, w.TotalInvested},
		{BucketTotalReturns, w.TotalReturns},
		{"amount", draft.Amount},
	}
	for _, b := range buckets {
		if !b.value.fitsStore() {
			return fmt.Errorf("%w: %s would exceed the maximum supported amount %s", errs.ErrInvalidAmount, b.name, maxMoney.StringFixed(MaxDecimalPlaces))
		}
	}
	return nil
}

func (w *Wallet) deposit(amount Money) EntryDraft {
	w.Balance = w.Balance.Add(amount)
	return EntryDraft{
		Type:         TypeCredit,
		Category:     CategoryPayment,
		Amount:       amount,
		Description:  fmt.Sprintf("Added ₹%s to wallet", amount),
		BalanceAfter: w.Balance,
	}
}

func (w *Wallet) withdraw(amount Money) (EntryDraft, error) {
	if w.Balance.LessThan(amount) {
		return EntryDraft{}, w.insufficient(BucketBalance, amount, w.Balance)
	}
	w.Balance = w.Balance.Sub(amount)
	return EntryDraft{
		Type:         TypeDebit,
		Category:     CategoryWithdrawal,
		Amount:       amount,
		Description:  fmt.Sprintf("Withdrawn ₹%s from wallet", amount),
		BalanceAfter: w.Balance,
	}, nil
}

func (w *Wallet) moveToEscrow(amount Money) (EntryDraft, error) {
	if w.Balance.LessThan(amount) {
		return EntryDraft{}, w.insufficient(BucketBalance, amount, w.Balance)
	}
	w.Balance = w.Balance.Sub(amount)
	w.EscrowedAmount = w.EscrowedAmount.Add(amount)
	return EntryDraft{
		Type:         TypeDebit,
		Category:     CategoryInvestment,
		Amount:       amount,
		Description:  fmt.Sprintf("Moved ₹%s to escrow", amount),
		BalanceAfter: w.Balance,
	}, nil
}

// invest leaves the balance bucket untouched, so balance_after equals the
// balance before the call
func (w *Wallet) invest(amount Money, tripID string) (EntryDraft, error) {
	if w.EscrowedAmount.LessThan(amount) {
		return EntryDraft{}, w.insufficient(BucketEscrowedAmount, amount, w.EscrowedAmount)
	}
	w.EscrowedAmount = w.EscrowedAmount.Sub(amount)
	w.TotalInvested = w.TotalInvested.Add(amount)

	description := fmt.Sprintf("Invested ₹%s", amount)
	if tripID != "" {
		description = fmt.Sprintf("Invested ₹%s in trip %s", amount, tripID)
	}
	return EntryDraft{
		Type:         TypeDebit,
		Category:     CategoryInvestment,
		Amount:       amount,
		Description:  description,
		BalanceAfter: w.Balance,
	}, nil
}

func (w *Wallet) settle(principal, returns Money, policy MovementPolicy) (EntryDraft, error) {
	if returns.IsNegative() {
		return EntryDraft{}, fmt.Errorf("%w: returns cannot be negative", errs.ErrInvalidAmount)
	}
	if policy.EnforceInvestedPrincipal && w.TotalInvested.LessThan(principal) {
		return EntryDraft{}, w.insufficient(BucketTotalInvested, principal, w.TotalInvested)
	}

	total := principal.Add(returns)
	invested := w.TotalInvested.Sub(principal)
	if invested.IsNegative() {
		invested = Zero
	}

	w.Balance = w.Balance.Add(total)
	w.TotalInvested = invested
	w.TotalReturns = w.TotalReturns.Add(returns)
	return EntryDraft{
		Type:         TypeCredit,
		Category:     CategoryReturn,
		Amount:       total,
		Description:  fmt.Sprintf("Investment returned: ₹%s + ₹%s returns", principal, returns),
		BalanceAfter: w.Balance,
	}, nil
}

func (w *Wallet) releaseEscrow(amount Money) (EntryDraft, error) {
	if w.EscrowedAmount.LessThan(amount) {
		return EntryDraft{}, w.insufficient(BucketEscrowedAmount, amount, w.EscrowedAmount)
	}
	w.EscrowedAmount = w.EscrowedAmount.Sub(amount)
	w.Balance = w.Balance.Add(amount)
	return EntryDraft{
		Type:         TypeCredit,
		Category:     CategoryRefund,
		Amount:       amount,
		Description:  fmt.Sprintf("Released ₹%s from escrow", amount),
		BalanceAfter: w.Balance,
	}, nil
}

// withdrawFromEscrow pays escrowed funds out of the wallet; the balance bucket
// is untouched
func (w *Wallet) withdrawFromEscrow(amount Money) (EntryDraft, error) {
	if w.EscrowedAmount.LessThan(amount) {
		return EntryDraft{}, w.insufficient(BucketEscrowedAmount, amount, w.EscrowedAmount)
	}
	w.EscrowedAmount = w.EscrowedAmount.Sub(amount)
	return EntryDraft{
		Type:         TypeDebit,
		Category:     CategoryWithdrawal,
		Amount:       amount,
		Description:  fmt.Sprintf("Withdrawn ₹%s from escrow", amount),
		BalanceAfter: w.Balance,
	}, nil
}
