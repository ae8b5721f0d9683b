package entity

import (
	"testing"
	"time"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow        = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	initialBalance = MustMoney("500000")
	strictPolicy   = MovementPolicy{EnforceInvestedPrincipal: true}
)

func newTestWallet(t *testing.T) *Wallet {
	t.Helper()
	w, err := NewWallet("lender-1", initialBalance, testNow)
	require.NoError(t, err)
	return w
}

func TestNewWallet(t *testing.T) {
	w := newTestWallet(t)
	assert.Equal(t, "500000.00", w.Balance.String())
	assert.True(t, w.LockedAmount.IsZero())
	assert.True(t, w.EscrowedAmount.IsZero())
	assert.True(t, w.TotalInvested.IsZero())
	assert.True(t, w.TotalReturns.IsZero())
	assert.Equal(t, testNow, w.CreatedAt)

	_, err := NewWallet("", initialBalance, testNow)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)

	_, err = NewWallet("lender-1", MustMoney("-1"), testNow)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestWalletLifecycle(t *testing.T) {
	w := newTestWallet(t)

	// deposit 1000
	draft, err := w.Execute(Movement{Operation: OpDeposit, Amount: MustMoney("1000")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "501000.00", w.Balance.String())
	assert.Equal(t, TypeCredit, draft.Type)
	assert.Equal(t, CategoryPayment, draft.Category)
	assert.Equal(t, "501000.00", draft.BalanceAfter.String())
	assert.Equal(t, "Added ₹1000.00 to wallet", draft.Description)

	// escrow 2000 from a fresh wallet
	w = newTestWallet(t)
	draft, err = w.Execute(Movement{Operation: OpMoveToEscrow, Amount: MustMoney("2000")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "498000.00", w.Balance.String())
	assert.Equal(t, "2000.00", w.EscrowedAmount.String())
	assert.Equal(t, TypeDebit, draft.Type)
	assert.Equal(t, CategoryInvestment, draft.Category)
	assert.Equal(t, "498000.00", draft.BalanceAfter.String())

	// invest 2000 keeps balance
	draft, err = w.Execute(Movement{Operation: OpInvest, Amount: MustMoney("2000"), TripID: "trip-7"}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "498000.00", w.Balance.String())
	assert.True(t, w.EscrowedAmount.IsZero())
	assert.Equal(t, "2000.00", w.TotalInvested.String())
	assert.Equal(t, "498000.00", draft.BalanceAfter.String())
	assert.Equal(t, "Invested ₹2000.00 in trip trip-7", draft.Description)

	// settle 2000 + 300
	draft, err = w.Execute(Movement{Operation: OpSettle, Amount: MustMoney("2000"), Returns: MustMoney("300")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "500300.00", w.Balance.String())
	assert.True(t, w.TotalInvested.IsZero())
	assert.Equal(t, "300.00", w.TotalReturns.String())
	assert.Equal(t, TypeCredit, draft.Type)
	assert.Equal(t, CategoryReturn, draft.Category)
	assert.Equal(t, "2300.00", draft.Amount.String())
	assert.Equal(t, "500300.00", draft.BalanceAfter.String())
	assert.Equal(t, "Investment returned: ₹2000.00 + ₹300.00 returns", draft.Description)
}

func TestWalletSettleAfterInvestment(t *testing.T) {
	w := newTestWallet(t)
	w.Balance = MustMoney("499000")
	w.TotalInvested = MustMoney("2000")

	draft, err := w.Execute(Movement{Operation: OpSettle, Amount: MustMoney("2000"), Returns: MustMoney("300")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "501300.00", w.Balance.String())
	assert.Equal(t, "501300.00", draft.BalanceAfter.String())
	assert.Equal(t, "2300.00", draft.Amount.String())
}

func TestWalletInsufficientFunds(t *testing.T) {
	tests := []struct {
		name     string
		movement Movement
		want     error
	}{
		{"withdraw above balance", Movement{Operation: OpWithdraw, Amount: MustMoney("600000")}, errs.ErrInsufficientFunds},
		{"escrow above balance", Movement{Operation: OpMoveToEscrow, Amount: MustMoney("500000.01")}, errs.ErrInsufficientFunds},
		{"invest without escrow", Movement{Operation: OpInvest, Amount: MustMoney("1")}, errs.ErrInsufficientEscrow},
		{"release without escrow", Movement{Operation: OpReleaseEscrow, Amount: MustMoney("1")}, errs.ErrInsufficientEscrow},
		{"escrow withdrawal without escrow", Movement{Operation: OpEscrowWithdrawal, Amount: MustMoney("1")}, errs.ErrInsufficientEscrow},
		{"settle above invested", Movement{Operation: OpSettle, Amount: MustMoney("1")}, errs.ErrInsufficientInvested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet(t)
			before := *w

			_, err := w.Execute(tt.movement, strictPolicy, testNow.Add(time.Minute))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errs.IsInsufficientError(err))
			assert.Equal(t, before, *w, "failed movement must not mutate the wallet")
		})
	}
}

func TestWalletInvalidAmount(t *testing.T) {
	for _, op := range []Operation{OpDeposit, OpWithdraw, OpMoveToEscrow, OpInvest, OpSettle, OpReleaseEscrow, OpEscrowWithdrawal} {
		t.Run(string(op), func(t *testing.T) {
			w := newTestWallet(t)
			_, err := w.Execute(Movement{Operation: op, Amount: Zero}, strictPolicy, testNow)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)

			_, err = w.Execute(Movement{Operation: op, Amount: MustMoney("-5")}, strictPolicy, testNow)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		})
	}

	w := newTestWallet(t)
	w.TotalInvested = MustMoney("100")
	_, err := w.Execute(Movement{Operation: OpSettle, Amount: MustMoney("100"), Returns: MustMoney("-1")}, strictPolicy, testNow)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = w.Execute(Movement{Operation: "transfer", Amount: MustMoney("1")}, strictPolicy, testNow)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestWalletRejectsResultsBeyondStoreLimit(t *testing.T) {
	largest := MustMoney("999999999999999999.99")

	tests := []struct {
		name  string
		setup func(w *Wallet)
		move  Movement
	}{
		{
			name: "deposit",
			move: Movement{Operation: OpDeposit, Amount: largest},
		},
		{
			name:  "settle returns",
			setup: func(w *Wallet) { w.TotalInvested = MustMoney("100") },
			move:  Movement{Operation: OpSettle, Amount: MustMoney("100"), Returns: largest},
		},
		{
			name: "release escrow",
			setup: func(w *Wallet) {
				w.Balance = largest
				w.EscrowedAmount = MustMoney("10")
			},
			move: Movement{Operation: OpReleaseEscrow, Amount: MustMoney("10")},
		},
		{
			name: "invest",
			setup: func(w *Wallet) {
				w.EscrowedAmount = MustMoney("10")
				w.TotalInvested = largest
			},
			move: Movement{Operation: OpInvest, Amount: MustMoney("10")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet(t)
			if tt.setup != nil {
				tt.setup(w)
			}
			before := *w

			_, err := w.Execute(tt.move, strictPolicy, testNow)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Equal(t, before, *w, "rejected movement must not mutate the wallet")
		})
	}

	// right at the limit is still accepted
	w := newTestWallet(t)
	w.Balance = largest.Sub(MustMoney("10"))
	_, err := w.Execute(Movement{Operation: OpDeposit, Amount: MustMoney("10")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "999999999999999999.99", w.Balance.String())
}

func TestWalletSettleWithoutEnforcement(t *testing.T) {
	w := newTestWallet(t)
	w.TotalInvested = MustMoney("500")

	_, err := w.Execute(Movement{Operation: OpSettle, Amount: MustMoney("800")}, MovementPolicy{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "500800.00", w.Balance.String())
	assert.True(t, w.TotalInvested.IsZero(), "total_invested is clamped at zero")
	require.NoError(t, w.CheckInvariants())
}

func TestWalletEscrowRelease(t *testing.T) {
	w := newTestWallet(t)
	w.EscrowedAmount = MustMoney("750")
	w.Balance = MustMoney("1000")

	draft, err := w.Execute(Movement{Operation: OpReleaseEscrow, Amount: MustMoney("250")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "1250.00", w.Balance.String())
	assert.Equal(t, "500.00", w.EscrowedAmount.String())
	assert.Equal(t, TypeCredit, draft.Type)
	assert.Equal(t, CategoryRefund, draft.Category)

	draft, err = w.Execute(Movement{Operation: OpEscrowWithdrawal, Amount: MustMoney("500")}, strictPolicy, testNow)
	require.NoError(t, err)
	assert.Equal(t, "1250.00", w.Balance.String())
	assert.True(t, w.EscrowedAmount.IsZero())
	assert.Equal(t, TypeDebit, draft.Type)
	assert.Equal(t, CategoryWithdrawal, draft.Category)
	assert.Equal(t, "1250.00", draft.BalanceAfter.String())
}

// Internal transfers keep balance + escrowed + invested constant; only
// deposits, withdrawals and escrow withdrawals move it.
func TestWalletConservation(t *testing.T) {
	w := newTestWallet(t)
	steps := []struct {
		movement Movement
		delta    string
	}{
		{Movement{Operation: OpDeposit, Amount: MustMoney("1000")}, "1000"},
		{Movement{Operation: OpMoveToEscrow, Amount: MustMoney("5000.50")}, "0"},
		{Movement{Operation: OpInvest, Amount: MustMoney("3000.25")}, "0"},
		{Movement{Operation: OpReleaseEscrow, Amount: MustMoney("1000")}, "0"},
		{Movement{Operation: OpSettle, Amount: MustMoney("3000.25"), Returns: MustMoney("150.10")}, "150.10"},
		{Movement{Operation: OpWithdraw, Amount: MustMoney("2500")}, "-2500"},
		{Movement{Operation: OpEscrowWithdrawal, Amount: MustMoney("1000.25")}, "-1000.25"},
	}

	for _, step := range steps {
		before := w.Holdings()
		_, err := w.Execute(step.movement, strictPolicy, testNow)
		require.NoError(t, err, step.movement.Operation)
		assert.Equal(t, MustMoney(step.delta).String(), w.Holdings().Sub(before).String(), step.movement.Operation)
		require.NoError(t, w.CheckInvariants())
	}
	assert.Equal(t, "150.10", w.TotalReturns.String())
}

func TestWalletApplyDelta(t *testing.T) {
	w := newTestWallet(t)
	balance := MustMoney("42")
	locked := MustMoney("10")

	err := w.Apply(WalletDelta{Balance: &balance, LockedAmount: &locked}, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "42.00", w.Balance.String())
	assert.Equal(t, "10.00", w.LockedAmount.String())
	assert.True(t, w.EscrowedAmount.IsZero())
	assert.Equal(t, testNow.Add(time.Hour), w.UpdatedAt)

	negative := MustMoney("-1")
	err = w.Apply(WalletDelta{EscrowedAmount: &negative}, testNow)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	assert.True(t, w.EscrowedAmount.IsZero())

	assert.True(t, WalletDelta{}.IsEmpty())
	assert.Len(t, WalletDelta{Balance: &balance}.Fields(), 1)
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, ValidateUserID("shipper-42"))
	assert.ErrorIs(t, ValidateUserID(""), errs.ErrInvalidUserID)

	long := make([]byte, MaxUserIDLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, ValidateUserID(string(long)), errs.ErrInvalidUserID)
}
