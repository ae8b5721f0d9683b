package history_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
	"github.com/logifin/wallet-ledger/internal/domain/usecase/history"
	"github.com/logifin/wallet-ledger/internal/domain/usecase/wallet"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/database"
)

// seededHistory records, for alice: deposit, escrow, invest, settle, withdraw;
// and for bob: one deposit
func seededHistory(t *testing.T) (*history.Service, []*entity.Transaction) {
	t.Helper()

	db := database.NewTestDBManager(t)
	uow := db.Manager.CreateUnitOfWork()
	ledger := wallet.NewService(uow, nil, nil, db.TimeProvider, db.Logger, wallet.DefaultConfig())
	t.Cleanup(func() { _ = ledger.Shutdown(context.Background()) })

	ctx := context.Background()
	amount := decimal.NewFromInt(1000)

	var written []*entity.Transaction
	record := func(res *usecase.MovementResult, err error) {
		require.NoError(t, err)
		written = append(written, res.Transaction)
	}
	record(ledger.AddMoney(ctx, "alice", amount))
	record(ledger.MoveToEscrow(ctx, "alice", amount))
	record(ledger.Invest(ctx, "alice", amount, "trip-1"))
	record(ledger.ReturnInvestment(ctx, "alice", amount, decimal.NewFromInt(50)))
	record(ledger.Withdraw(ctx, "alice", amount))
	record(ledger.AddMoney(ctx, "bob", amount))

	return history.NewService(uow, db.Logger), written
}

func ids(txns []*entity.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}

func TestGetTransaction(t *testing.T) {
	svc, written := seededHistory(t)
	ctx := context.Background()

	got, err := svc.GetTransaction(ctx, written[3].ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, entity.CategoryReturn, got.Category)
	assert.Equal(t, "1050.00", got.Amount.String())
	assert.Equal(t, written[3].BalanceAfter.String(), got.BalanceAfter.String())

	_, err = svc.GetTransaction(ctx, "txn-missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	_, err = svc.GetTransaction(ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestListUserTransactions(t *testing.T) {
	svc, written := seededHistory(t)
	ctx := context.Background()

	all, err := svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{})
	require.NoError(t, err)
	// newest first
	assert.Equal(t, []string{written[4].ID, written[3].ID, written[2].ID, written[1].ID, written[0].ID}, ids(all))

	credits, err := svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{Type: entity.TypeCredit})
	require.NoError(t, err)
	assert.Equal(t, []string{written[3].ID, written[0].ID}, ids(credits))

	investments, err := svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{Category: entity.CategoryInvestment})
	require.NoError(t, err)
	assert.Equal(t, []string{written[2].ID, written[1].ID}, ids(investments))

	// type and category filters combine
	debitInvestments, err := svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{
		Type:     entity.TypeCredit,
		Category: entity.CategoryInvestment,
	})
	require.NoError(t, err)
	assert.Empty(t, debitInvestments)

	latest, err := svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{written[4].ID, written[3].ID}, ids(latest))

	none, err := svc.ListUserTransactions(ctx, "carol", entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListUserTransactions(ctx, "alice", entity.TransactionFilter{Type: "refund"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestListAllTransactions(t *testing.T) {
	svc, written := seededHistory(t)
	ctx := context.Background()

	_, err := svc.ListAllTransactions(ctx, entity.Actor{ID: "alice"}, entity.TransactionFilter{})
	assert.ErrorIs(t, err, errs.ErrForbidden)

	all, err := svc.ListAllTransactions(ctx, entity.Actor{ID: "ops", Role: entity.RoleSuperAdmin}, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(written))
	assert.Equal(t, written[5].ID, all[0].ID)
}
